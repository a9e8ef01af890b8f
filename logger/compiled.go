package logger

import "github.com/philipp01105/catlog/core"

// compiled reports whether Handle methods for level survive the build
// tags of this build.
func compiled(level core.Level) bool {
	switch level {
	case core.FatalLevel:
		return fatalCompiled
	case core.ErrorLevel:
		return errorCompiled
	case core.WarningLevel:
		return warningCompiled
	case core.InfoLevel:
		return infoCompiled
	case core.VerboseLevel:
		return verboseCompiled
	case core.DebugLevel:
		return debugCompiled
	default:
		return false
	}
}
