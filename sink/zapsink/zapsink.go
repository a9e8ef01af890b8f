// Package zapsink forwards messages to a go.uber.org/zap Logger.
//
// FATAL is written at zap's Error level with a severity field, since a
// zap Fatal entry terminates the process. VERBOSE and DEBUG both map to
// Debug; the severity field keeps them apart.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// Field keys added to every entry.
const (
	CategoryKey = "category"
	SeverityKey = "severity"
)

// Sink forwards messages to a *zap.Logger
type Sink struct {
	*sink.Assembler
	log *zap.Logger
}

// New creates a sink forwarding to l. nil uses zap.L().
func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.L()
	}
	s := &Sink{log: l}
	s.Assembler = sink.NewAssembler(s.emit, nil)
	return s
}

// Level converts a core.Level to a zapcore.Level.
func Level(level core.Level) zapcore.Level {
	switch level {
	case core.FatalLevel, core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func (s *Sink) emit(rec *core.Record, msg []byte) error {
	ce := s.log.Check(Level(rec.Level), sink.MessageText(msg))
	if ce == nil {
		return nil
	}
	ce.Time = rec.Time
	if rec.Caller.Defined {
		ce.Caller = zapcore.EntryCaller{Defined: true, File: rec.Caller.File, Line: rec.Caller.Line}
	}
	ce.Write(
		zap.String(CategoryKey, rec.Category),
		zap.Stringer(SeverityKey, rec.Level),
	)
	return nil
}

// Sync flushes the underlying zap core.
func (s *Sink) Sync() error {
	return s.log.Sync()
}
