package logger

import (
	"errors"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/formatter"
	"github.com/philipp01105/catlog/sink"
)

// Logger holds the sink and thresholds consulted by every log call.
type Logger struct {
	formatter formatter.Formatter
	mu        sync.Mutex // serializes settings writers
	state     atomic.Pointer[settings]
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink       sink.Sink
	level      core.Level
	categories map[string]core.Level
	formatter  formatter.Formatter
}

// NewBuilder creates a new logger builder. The global threshold defaults
// to SILENT and the formatter to formatter.Printf.
func NewBuilder() *Builder {
	return &Builder{
		level:     core.SilentLevel,
		formatter: formatter.Printf{},
	}
}

// WithSink sets the sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithLevel sets the global threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCategoryLevel adds a per-category threshold override
func (b *Builder) WithCategoryLevel(category string, level core.Level) *Builder {
	if b.categories == nil {
		b.categories = make(map[string]core.Level)
	}
	b.categories[category] = level
	return b
}

// WithFormatter sets the message formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	if f != nil {
		b.formatter = f
	}
	return b
}

// Build creates the Logger instance. It fails with ErrNilSink when no
// sink was set.
func (b *Builder) Build() (*Logger, error) {
	if b.sink == nil {
		return nil, ErrNilSink
	}
	return newLogger(b.sink, b.level, b.categories, b.formatter), nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Logger {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func newLogger(s sink.Sink, level core.Level, categories map[string]core.Level, f formatter.Formatter) *Logger {
	l := &Logger{formatter: f}
	l.state.Store(&settings{sink: s, level: level, categories: maps.Clone(categories)})
	return l
}

// Log is the dispatch entry point. It delivers the message to the sink
// if level passes the threshold of category, using the given source
// location. Rejected messages return nil without formatting anything.
func (l *Logger) Log(level core.Level, category, file string, line int, format string, args ...any) error {
	st := l.state.Load()
	if !st.accepts(level, category) {
		return nil
	}
	return l.dispatch(st.sink, level, category, file, line, format, args)
}

// For returns a Handle bound to category.
func (l *Logger) For(category string) Handle {
	return Handle{logger: l, category: category}
}

// dispatch delivers one accepted message. The buffer is closed inside
// render, strictly before the envelope closes here.
func (l *Logger) dispatch(s sink.Sink, level core.Level, category, file string, line int, format string, args []any) (err error) {
	if s == nil {
		panic(fmt.Errorf("%w: %s message for category %q", ErrNoSink, level, category))
	}

	env, err := openEnvelope(s, level, category, file, line)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, env.close())
	}()

	return l.render(s, format, args)
}

// render runs the formatter into a pooled Buffer bound to s and flushes
// the remainder before returning.
func (l *Logger) render(s sink.Sink, format string, args []any) (err error) {
	buf := getBuffer(s)
	defer func() {
		if cerr := buf.Close(); cerr != nil && !errors.Is(err, cerr) {
			err = multierr.Append(err, cerr)
		}
		putBuffer(buf)
	}()

	return l.formatter.Format(buf, format, args)
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(sink.Buffer)
	},
}

func getBuffer(s sink.Sink) *sink.Buffer {
	buf := bufferPool.Get().(*sink.Buffer)
	buf.Reset(s)
	return buf
}

func putBuffer(buf *sink.Buffer) {
	buf.Reset(nil)
	bufferPool.Put(buf)
}
