package slogsink

import (
	"log/slog"

	"github.com/philipp01105/catlog/core"
)

const (
	// LevelVerbose is the slog level used for VERBOSE messages
	LevelVerbose = slog.Level(-2)
	// LevelFatal is the slog level used for FATAL messages
	LevelFatal = slog.Level(12)
)

// ToSlog converts a core.Level to a slog.Level.
func ToSlog(level core.Level) slog.Level {
	switch level {
	case core.FatalLevel:
		return LevelFatal
	case core.ErrorLevel:
		return slog.LevelError
	case core.WarningLevel:
		return slog.LevelWarn
	case core.InfoLevel:
		return slog.LevelInfo
	case core.VerboseLevel:
		return LevelVerbose
	default:
		return slog.LevelDebug
	}
}

// FromSlog converts a slog.Level to a core.Level.
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= LevelFatal:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= LevelVerbose:
		return core.VerboseLevel
	default:
		return core.DebugLevel
	}
}
