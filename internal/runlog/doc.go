// Package runlog persists run history in a SQLite database so past
// organization runs can be inspected from the CLI. Retention is bounded;
// only the most recent runs are kept.
package runlog
