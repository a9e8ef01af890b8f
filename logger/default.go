package logger

import (
	"sync/atomic"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/formatter"
	"github.com/philipp01105/catlog/sink"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(newDefault())
}

// newDefault returns an unconfigured Logger: no sink, SILENT.
func newDefault() *Logger {
	return newLogger(nil, core.SilentLevel, nil, formatter.Printf{})
}

// Default returns the default logger
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger. nil restores a fresh unconfigured
// logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = newDefault()
	}
	defaultLogger.Store(l)
}

// Package-level convenience functions using the default logger

// For returns a Handle bound to category that logs to whatever Logger is
// the default at the time of each call.
func For(category string) Handle {
	return Handle{category: category}
}

// InstallSink replaces the sink of the default logger
func InstallSink(s sink.Sink) {
	Default().InstallSink(s)
}

// SetLevel sets the global threshold of the default logger
func SetLevel(level core.Level) {
	Default().SetLevel(level)
}

// SetCategoryLevel sets a category override on the default logger
func SetCategoryLevel(category string, level core.Level) {
	Default().SetCategoryLevel(category, level)
}

// ClearCategoryLevel removes a category override from the default logger
func ClearCategoryLevel(category string) {
	Default().ClearCategoryLevel(category)
}

// Log logs through the default logger with an explicit source location
func Log(level core.Level, category, file string, line int, format string, args ...any) error {
	return Default().Log(level, category, file, line, format, args...)
}
