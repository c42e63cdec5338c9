// Package logging configures log/slog output for the CLI and core pipeline.
//
// It provides an Options-driven constructor with console and JSON handlers,
// typed attribute helpers so call sites stay terse, and a no-op logger for
// tests. Components obtain scoped loggers through NewComponentLogger so every
// record carries a stable component field.
package logging
