// Package hclogsink forwards messages to a hashicorp/go-hclog Logger.
//
// hclog has no fatal level, so FATAL is logged at Error with an extra
// severity=FATAL pair. VERBOSE maps to Debug and DEBUG to Trace.
package hclogsink

import (
	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// Sink forwards messages to an hclog.Logger
type Sink struct {
	*sink.Assembler
	log hclog.Logger
}

// New creates a sink forwarding to l.
func New(l hclog.Logger) *Sink {
	s := &Sink{log: l}
	s.Assembler = sink.NewAssembler(s.emit, nil)
	return s
}

// Level converts a core.Level to an hclog.Level.
func Level(level core.Level) hclog.Level {
	switch level {
	case core.FatalLevel, core.ErrorLevel:
		return hclog.Error
	case core.WarningLevel:
		return hclog.Warn
	case core.InfoLevel:
		return hclog.Info
	case core.VerboseLevel:
		return hclog.Debug
	case core.DebugLevel:
		return hclog.Trace
	default:
		return hclog.NoLevel
	}
}

func (s *Sink) emit(rec *core.Record, msg []byte) error {
	args := make([]interface{}, 0, 8)
	if rec.Category != "" {
		args = append(args, "category", rec.Category)
	}
	if rec.Caller.Defined {
		args = append(args, "file", rec.Caller.File, "line", rec.Caller.Line)
	}
	if rec.Level == core.FatalLevel {
		args = append(args, "severity", rec.Level.String())
	}
	s.log.Log(Level(rec.Level), sink.MessageText(msg), args...)
	return nil
}
