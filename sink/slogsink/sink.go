package slogsink

import (
	"context"
	"log/slog"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// Attribute keys added to every forwarded record.
const (
	CategoryKey = "category"
	FileKey     = "file"
	LineKey     = "line"
)

// Sink forwards messages to a slog.Handler
type Sink struct {
	*sink.Assembler
	handler slog.Handler
}

// New creates a sink forwarding to h.
func New(h slog.Handler) *Sink {
	s := &Sink{handler: h}
	s.Assembler = sink.NewAssembler(s.emit, nil)
	return s
}

func (s *Sink) emit(rec *core.Record, msg []byte) error {
	ctx := context.Background()
	level := ToSlog(rec.Level)
	if !s.handler.Enabled(ctx, level) {
		return nil
	}

	r := slog.NewRecord(rec.Time, level, sink.MessageText(msg), 0)
	if rec.Category != "" {
		r.AddAttrs(slog.String(CategoryKey, rec.Category))
	}
	if rec.Caller.Defined {
		r.AddAttrs(slog.String(FileKey, rec.Caller.File), slog.Int(LineKey, rec.Caller.Line))
	}
	return s.handler.Handle(ctx, r)
}
