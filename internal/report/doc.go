// Package report assembles the human-readable outputs of an organization
// run: a plain-text manifest per client written into its version folder, an
// aggregate run summary for console rendering, and flat link-value maps that
// downstream spreadsheet tooling resolves into hyperlinks.
package report
