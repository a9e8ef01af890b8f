package slogsink

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/philipp01105/catlog/logger"
)

// Handler is an adapter that implements slog.Handler on top of a Logger.
// Records are filtered by the Logger's threshold for the handler's
// category and rendered as the message followed by key=value pairs.
type Handler struct {
	logger   *logger.Logger
	category string
	attrs    string // pre-rendered " key=value" pairs
	group    string
}

// NewHandler creates a slog.Handler logging to l in category.
// A nil l logs to the default Logger at call time.
func NewHandler(l *logger.Logger, category string) *Handler {
	return &Handler{logger: l, category: category}
}

func (h *Handler) target() *logger.Logger {
	if h.logger != nil {
		return h.logger
	}
	return logger.Default()
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.target().Enabled(FromSlog(level), h.category)
}

// Handle renders the record and passes it to the Logger.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var file string
	var line int
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		file, line = frame.File, frame.Line
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	return h.target().Log(FromSlog(record.Level), h.category, file, line, "%s", b.String())
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	h2 := *h
	h2.attrs = b.String()
	return &h2
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.group != "" {
		h2.group = h.group + "." + name
	} else {
		h2.group = name
	}
	return &h2
}

// appendAttr writes " key=value", prefixing the key with group. Group
// values are flattened into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	if a.Value.Kind() == slog.KindString {
		s := a.Value.String()
		if strings.ContainsAny(s, " =\"") {
			b.WriteString(strconv.Quote(s))
			return
		}
		b.WriteString(s)
		return
	}
	b.WriteString(a.Value.String())
}
