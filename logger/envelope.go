package logger

import (
	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// envelope brackets one accepted message: BeginLog when opened, EndLog
// when closed.
type envelope struct {
	sink sink.Sink
}

// openEnvelope starts a message on s. When BeginLog fails there is no
// envelope to close.
func openEnvelope(s sink.Sink, level core.Level, category, file string, line int) (envelope, error) {
	if err := s.BeginLog(level, category, file, line); err != nil {
		return envelope{}, err
	}
	return envelope{sink: s}, nil
}

func (e envelope) close() error {
	return e.sink.EndLog()
}
