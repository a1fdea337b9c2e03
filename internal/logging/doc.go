// Package logging configures slog for the CLI: a human-readable console
// handler or a JSON handler, multiplexed to stdout and an append-only log
// file under the configured log directory.
package logging
