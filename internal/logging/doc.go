// Package logging assembles the structured slog loggers used across talknotes.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// session handler that tags every record of one invocation with the same
// session_id. User-facing messages are printed by the CLI; this package is for
// diagnostics, which go to stderr and optionally to a log file.
//
// A no-op logger is provided for tests and wiring code that cannot fail.
package logging
