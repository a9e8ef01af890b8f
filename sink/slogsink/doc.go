// Package slogsink connects the logger to log/slog in both directions.
//
// Sink forwards every delivered message to a slog.Handler, carrying the
// category and source location as attributes. Handler goes the other
// way: it implements slog.Handler on top of a *logger.Logger so code
// written against slog obeys the same thresholds as everything else.
//
// VERBOSE has no slog counterpart and maps to slog.Level(-2), between
// Debug and Info. FATAL maps to slog.Level(12).
package slogsink
