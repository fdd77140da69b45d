// Package logging assembles the structured slog loggers used across the
// converter.
//
// It owns the console and JSON handlers, level parsing, and a no-op logger
// for tests and wiring code that cannot fail. Prefer these constructors over
// hand-rolled slog setup so every component logs with the same shape.
package logging
