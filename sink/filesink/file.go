package filesink

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/formatter"
	"github.com/philipp01105/catlog/sink"
)

var (
	// ErrNoFilename is returned by New when Config.Filename is empty.
	ErrNoFilename = errors.New("filesink: filename is required")
	// ErrClosed is returned for messages delivered after Close.
	ErrClosed = errors.New("filesink: sink is closed")
)

const defaultBufferSize = 4096

// Config holds configuration for the file sink
type Config struct {
	// Filename is the path to the log file. Missing directories are created.
	Filename string
	// Layout frames each message (default: TextLayout with caller)
	Layout formatter.Layout
	// AutoFlush flushes the bufio.Writer after every message
	AutoFlush bool
	// Perm is the mode used when creating the file (default: 0644)
	Perm os.FileMode
	// BufferSize is the size of the bufio.Writer (default: 4096)
	BufferSize int
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Layout == nil {
		cfg.Layout = formatter.NewTextLayout(formatter.Config{IncludeCaller: true})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0o644
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
}

// Sink appends framed messages to a file
type Sink struct {
	*sink.Assembler
	filename  string
	layout    formatter.Layout
	autoFlush bool

	mu     sync.Mutex // protects file, bufWriter, size and closed
	file   *os.File
	bw     *bufio.Writer
	size   int64
	closed bool
	out    bytes.Buffer // guarded by the assembler lock
}

// New opens (or creates) the file in append mode and returns a sink
// writing to it.
func New(cfg Config) (*Sink, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	applyDefaults(&cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("filesink: create directory: %w", err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("filesink: open %s: %w", cfg.Filename, err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("filesink: stat %s: %w", cfg.Filename, err), file.Close())
	}

	s := &Sink{
		filename:  cfg.Filename,
		layout:    cfg.Layout,
		autoFlush: cfg.AutoFlush,
		file:      file,
		bw:        bufio.NewWriterSize(file, cfg.BufferSize),
		size:      info.Size(),
	}
	s.out.Grow(256)
	s.Assembler = sink.NewAssembler(s.emit, nil)
	return s, nil
}

// emit runs under the assembler lock.
func (s *Sink) emit(rec *core.Record, msg []byte) error {
	s.out.Reset()
	s.layout.Encode(&s.out, rec, msg)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	n, err := s.bw.Write(s.out.Bytes())
	s.size += int64(n)
	if err != nil {
		return err
	}
	if s.autoFlush {
		return s.bw.Flush()
	}
	return nil
}

// Filename returns the path of the log file.
func (s *Sink) Filename() string {
	return s.filename
}

// Size returns the file size including bytes still buffered.
func (s *Sink) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Flush writes buffered lines to the file.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.bw.Flush()
}

// Close flushes, syncs and closes the file. Closing twice is a no-op.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	err := s.bw.Flush()
	err = multierr.Append(err, s.file.Sync())
	return multierr.Append(err, s.file.Close())
}
