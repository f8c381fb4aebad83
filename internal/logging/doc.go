// Package logging constructs slog loggers for the CLI and core packages.
//
// Loggers are built from config values (format and level) and write to stderr
// plus an optional file under the configured log directory. Use NewNop in
// tests or wherever a logger is required but output is unwanted.
package logging
