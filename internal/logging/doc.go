// Package logging assembles structured slog loggers for the beatinfo CLI.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// standardized field keys (component, song, correlation_id) that the store
// and commands attach to every line. NewNop returns a discarding logger for
// tests and wiring code that cannot fail.
package logging
