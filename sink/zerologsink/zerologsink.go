// Package zerologsink forwards messages to a github.com/rs/zerolog Logger.
//
// Levels are written with WithLevel, so FATAL is recorded as fatal
// without terminating the process. VERBOSE maps to debug and DEBUG to
// trace.
package zerologsink

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// CategoryKey is the field carrying the category
const CategoryKey = "category"

// Sink forwards messages to a zerolog.Logger
type Sink struct {
	*sink.Assembler
	log zerolog.Logger
}

// New creates a sink forwarding to l.
func New(l zerolog.Logger) *Sink {
	s := &Sink{log: l}
	s.Assembler = sink.NewAssembler(s.emit, nil)
	return s
}

// Level converts a core.Level to a zerolog.Level.
func Level(level core.Level) zerolog.Level {
	switch level {
	case core.FatalLevel:
		return zerolog.FatalLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.WarningLevel:
		return zerolog.WarnLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.VerboseLevel:
		return zerolog.DebugLevel
	case core.DebugLevel:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}

func (s *Sink) emit(rec *core.Record, msg []byte) error {
	ev := s.log.WithLevel(Level(rec.Level))
	if ev == nil {
		return nil
	}
	ev = ev.Time(zerolog.TimestampFieldName, rec.Time)
	if rec.Category != "" {
		ev = ev.Str(CategoryKey, rec.Category)
	}
	if rec.Caller.Defined {
		ev = ev.Str(zerolog.CallerFieldName, rec.Caller.File+":"+strconv.Itoa(rec.Caller.Line))
	}
	ev.Msg(sink.MessageText(msg))
	return nil
}
