package consolesink

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/formatter"
	"github.com/philipp01105/catlog/sink"
)

// ColorMode controls ANSI coloring of the default text layout.
type ColorMode int

const (
	// ColorAuto colors output when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output
	ColorAlways
	// ColorNever disables colored output
	ColorNever
)

// Config holds configuration for the console sink
type Config struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Layout frames each message (default: TextLayout with caller)
	Layout formatter.Layout
	// Color applies to the default layout only (default: ColorAuto)
	Color ColorMode
	// CoarseClock stamps records with core.CoarseNow instead of time.Now.
	// The clock goroutine is started on first use.
	CoarseClock bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Layout == nil {
		cfg.Layout = formatter.NewTextLayout(formatter.Config{
			IncludeCaller: true,
			Color:         useColor(cfg.Color, cfg.Writer),
		})
	}
}

// useColor resolves mode against the writer.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Sink writes framed messages to an io.Writer
type Sink struct {
	*sink.Assembler
	writer io.Writer
	layout formatter.Layout
	out    bytes.Buffer // guarded by the assembler lock
}

// New creates a console sink.
func New(cfg Config) *Sink {
	applyDefaults(&cfg)

	s := &Sink{
		writer: cfg.Writer,
		layout: cfg.Layout,
	}
	s.out.Grow(256)

	var clock func() time.Time
	if cfg.CoarseClock {
		core.StartCoarseClock()
		clock = core.CoarseNow
	}
	s.Assembler = sink.NewAssembler(s.emit, clock)
	return s
}

// emit runs under the assembler lock.
func (s *Sink) emit(rec *core.Record, msg []byte) error {
	s.out.Reset()
	s.layout.Encode(&s.out, rec, msg)
	_, err := s.writer.Write(s.out.Bytes())
	return err
}
