// Package logging assembles structured slog loggers and formatting helpers
// used across relocarr.
//
// It owns the configurable console/JSON handlers, centralizes level plumbing,
// and exposes shared attribute keys so every component tags log lines with
// the same run and entity fields. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
