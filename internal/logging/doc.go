// Package logging builds the slog loggers used across mvault.
//
// It maps config values to handler construction (console or JSON, level,
// optional log file) and exposes the attr helpers and standardized field
// names the rest of the codebase logs with. Components obtain scoped loggers
// through NewComponentLogger so every record carries a component attribute.
package logging
