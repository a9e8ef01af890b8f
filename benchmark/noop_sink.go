// Package benchmark holds benchmarks for the logger and comparative runs
// against zap, zerolog, logrus and slog.
package benchmark

import (
	"github.com/philipp01105/catlog/core"
)

// noopSink counts calls and drops the data. Unlike sink.Discard it
// touches every chunk, so the benchmark cannot skip the copy.
type noopSink struct {
	messages uint64
	bytes    uint64
}

func newNoopSink() *noopSink {
	return &noopSink{}
}

func (s *noopSink) BeginLog(core.Level, string, string, int) error {
	return nil
}

func (s *noopSink) Feed(p []byte) error {
	s.bytes += uint64(len(p))
	return nil
}

func (s *noopSink) EndLog() error {
	s.messages++
	return nil
}
