package logger

import (
	"github.com/philipp01105/catlog/core"
)

// callerSkip is the number of frames between Handle.log and the user's
// call site.
const callerSkip = 2

// Handle is an immutable logging handle bound to a category. The zero
// Handle logs to the default Logger with an empty category.
type Handle struct {
	logger   *Logger // nil means Default() at call time
	category string
}

// Category returns the category bound to h.
func (h Handle) Category() string {
	return h.category
}

// With returns a copy of h bound to category.
func (h Handle) With(category string) Handle {
	return Handle{logger: h.logger, category: category}
}

// Logger returns the Logger h delivers to.
func (h Handle) Logger() *Logger {
	if h.logger != nil {
		return h.logger
	}
	return Default()
}

// Enabled reports whether a message at level in h's category would be
// delivered, taking compile-time elision into account.
func (h Handle) Enabled(level core.Level) bool {
	return compiled(level) && h.Logger().Enabled(level, h.category)
}

// log captures the caller only after the threshold check accepted.
func (h Handle) log(level core.Level, category, format string, args []any) error {
	l := h.Logger()
	st := l.state.Load()
	if !st.accepts(level, category) {
		return nil
	}
	caller := core.GetCaller(callerSkip)
	return l.dispatch(st.sink, level, category, caller.File, caller.Line, format, args)
}

// Logf logs at level in h's category.
func (h Handle) Logf(level core.Level, format string, args ...any) error {
	if !compiled(level) {
		return nil
	}
	return h.log(level, h.category, format, args)
}

// LogfC logs at level in category.
func (h Handle) LogfC(level core.Level, category, format string, args ...any) error {
	if !compiled(level) {
		return nil
	}
	return h.log(level, category, format, args)
}

// Fatalf logs a fatal message. It does not exit the program.
func (h Handle) Fatalf(format string, args ...any) error {
	if !fatalCompiled {
		return nil
	}
	return h.log(core.FatalLevel, h.category, format, args)
}

// FatalfC logs a fatal message in category.
func (h Handle) FatalfC(category, format string, args ...any) error {
	if !fatalCompiled {
		return nil
	}
	return h.log(core.FatalLevel, category, format, args)
}

// Errorf logs an error message.
func (h Handle) Errorf(format string, args ...any) error {
	if !errorCompiled {
		return nil
	}
	return h.log(core.ErrorLevel, h.category, format, args)
}

// ErrorfC logs an error message in category.
func (h Handle) ErrorfC(category, format string, args ...any) error {
	if !errorCompiled {
		return nil
	}
	return h.log(core.ErrorLevel, category, format, args)
}

// Warningf logs a warning message.
func (h Handle) Warningf(format string, args ...any) error {
	if !warningCompiled {
		return nil
	}
	return h.log(core.WarningLevel, h.category, format, args)
}

// WarningfC logs a warning message in category.
func (h Handle) WarningfC(category, format string, args ...any) error {
	if !warningCompiled {
		return nil
	}
	return h.log(core.WarningLevel, category, format, args)
}

// Infof logs an info message.
func (h Handle) Infof(format string, args ...any) error {
	if !infoCompiled {
		return nil
	}
	return h.log(core.InfoLevel, h.category, format, args)
}

// InfofC logs an info message in category.
func (h Handle) InfofC(category, format string, args ...any) error {
	if !infoCompiled {
		return nil
	}
	return h.log(core.InfoLevel, category, format, args)
}

// Verbosef logs a verbose message.
func (h Handle) Verbosef(format string, args ...any) error {
	if !verboseCompiled {
		return nil
	}
	return h.log(core.VerboseLevel, h.category, format, args)
}

// VerbosefC logs a verbose message in category.
func (h Handle) VerbosefC(category, format string, args ...any) error {
	if !verboseCompiled {
		return nil
	}
	return h.log(core.VerboseLevel, category, format, args)
}

// Debugf logs a debug message.
func (h Handle) Debugf(format string, args ...any) error {
	if !debugCompiled {
		return nil
	}
	return h.log(core.DebugLevel, h.category, format, args)
}

// DebugfC logs a debug message in category.
func (h Handle) DebugfC(category, format string, args ...any) error {
	if !debugCompiled {
		return nil
	}
	return h.log(core.DebugLevel, category, format, args)
}
