// Package scanner walks a source folder once and produces an immutable
// ScanResult.
//
// Each candidate spreadsheet costs exactly one stat and one short signature
// read; file contents are never parsed. Files that fail the signature check,
// cannot be classified, or miss client/jurisdiction captures become
// Variations. Scan is a pure call: every invocation builds a fresh result
// and no scanner state survives between runs.
package scanner
