// Package classify maps GST spreadsheet filenames to document categories.
//
// The pattern bank is an ordered list and the first matching rule wins;
// reordering the bank changes behaviour and is a breaking change. Matching is
// case-insensitive and tolerates a leading parenthesized counter such as
// "(1) " that download managers prepend. Captured groups populate the
// client, jurisdiction, and free-form metadata slots named by each rule.
//
// Soft validation of the captured client and jurisdiction produces warnings
// on the result but never blocks classification. When nothing matches, the
// classifier sniffs keywords to suggest the naming convention the file was
// probably aiming for.
package classify
