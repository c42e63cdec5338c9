// Package registry groups classified files by canonical client key and
// scores each client's completeness against the expected category set.
//
// The key is "<client>-<code>" where the code comes from jurisdiction
// normalization, so "Acme / Maharashtra" and "Acme / maharashtra" land on
// the same record. Display strings keep their first-seen spelling. A file
// only enters the registry when both client and jurisdiction were captured.
//
// AnalyzeCompleteness runs once after all files are added and fills the
// missing list, the duplicate list, the completeness percentage, and the
// status. When a client has both missing and duplicate categories the
// status reports only the missing count; duplicates stay on the record.
package registry
