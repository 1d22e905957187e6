// Package logger is a small leveled logger used by the calcpad front ends.
//
// Lines look like
//
//	2026-10-14 09:30:01.250 [INFO] [web] GET /api/evaluate 200 41B 180µs
//
// A Logger with no destination discards everything, so components can
// always hold one. NewSlogHandler exposes the same sink to log/slog users.
package logger
