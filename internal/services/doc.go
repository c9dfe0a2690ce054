// Package services defines shared utilities consumed by the relocation
// engine and external integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     into run-fatal (configuration) and per-entry (transient) categories.
//
// Use these helpers when wiring new engine logic so error handling stays
// uniform across components.
package services
