// Package record defines the value types shared across the scan and
// organize phases.
//
// FileRecord captures one scanned spreadsheet together with its
// classification; Variation captures a file that could not be classified or
// failed basic validity checks. Both are produced during scanning and read,
// never rewritten, during organization. The single exception is the
// sanitized final name, which materialization records exactly once after a
// successful copy.
package record
