// Package logrussink forwards messages to a github.com/sirupsen/logrus Logger.
//
// Entries are written with Entry.Log, which never exits or panics for
// FATAL. VERBOSE maps to debug and DEBUG to trace.
package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// Field keys added to every entry.
const (
	CategoryKey = "category"
	FileKey     = "file"
	LineKey     = "line"
)

// Sink forwards messages to a *logrus.Logger
type Sink struct {
	*sink.Assembler
	log *logrus.Logger
}

// New creates a sink forwarding to l. nil uses logrus.StandardLogger().
func New(l *logrus.Logger) *Sink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	s := &Sink{log: l}
	s.Assembler = sink.NewAssembler(s.emit, nil)
	return s
}

// Level converts a core.Level to a logrus.Level.
func Level(level core.Level) logrus.Level {
	switch level {
	case core.FatalLevel:
		return logrus.FatalLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	case core.WarningLevel:
		return logrus.WarnLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.VerboseLevel:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func (s *Sink) emit(rec *core.Record, msg []byte) error {
	level := Level(rec.Level)
	if !s.log.IsLevelEnabled(level) {
		return nil
	}

	fields := make(logrus.Fields, 3)
	if rec.Category != "" {
		fields[CategoryKey] = rec.Category
	}
	if rec.Caller.Defined {
		fields[FileKey] = rec.Caller.File
		fields[LineKey] = rec.Caller.Line
	}
	s.log.WithFields(fields).WithTime(rec.Time).Log(level, sink.MessageText(msg))
	return nil
}
