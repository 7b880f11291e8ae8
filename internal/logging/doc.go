// Package logging assembles the structured slog loggers used by the matcher,
// the resolution engine and the CLI.
//
// It owns the console and JSON handlers, maps configured level names onto
// slog levels, and exposes context helpers so every line emitted while
// resolving one address carries the same request ID (shown as "#abcd1234" in
// console headers and as request_id in JSON). A no-op logger is provided for
// tests and for wiring code that receives a nil logger.
//
// Logs go to stderr by default so command output on stdout stays parseable.
package logging
