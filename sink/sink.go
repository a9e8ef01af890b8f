package sink

import (
	"github.com/philipp01105/catlog/core"
)

// Sink consumes accepted log messages.
type Sink interface {
	// BeginLog starts a message. category and file are only guaranteed
	// to be valid until the matching EndLog returns.
	BeginLog(level core.Level, category, file string, line int) error

	// Feed delivers the next non-empty chunk of the rendered message.
	// p is reused after Feed returns; sinks must copy what they keep.
	Feed(p []byte) error

	// EndLog completes the message started by the last BeginLog.
	EndLog() error
}

// Discard is a Sink that accepts and drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) BeginLog(core.Level, string, string, int) error { return nil }
func (discard) Feed([]byte) error                               { return nil }
func (discard) EndLog() error                                   { return nil }
