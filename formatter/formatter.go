package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/philipp01105/catlog/core"
)

// Writer is the write target handed to a Formatter.
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Formatter renders a format string and its arguments into w.
type Formatter interface {
	// Format writes the rendered message to w. Write errors from w are
	// returned unchanged.
	Format(w Writer, format string, args []any) error
}

// Layout frames a finished message with its record metadata.
type Layout interface {
	// Encode appends the framed message to buf.
	Encode(buf *bytes.Buffer, rec *core.Record, msg []byte)
}

// Config holds common layout configuration
type Config struct {
	// IncludeCaller enables file:line information in output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// Color wraps level tags in ANSI color sequences (text only)
	Color bool
}

var (
	// ErrMissingArgument is returned when a verb has no argument left.
	ErrMissingArgument = errors.New("missing argument for verb")
	// ErrExtraArgument is returned when arguments remain after the last verb.
	ErrExtraArgument = errors.New("extra arguments for format")
	// ErrBadArgument is returned when an argument does not fit its verb.
	ErrBadArgument = errors.New("argument does not match verb")
	// ErrBadVerb is returned for truncated or unsupported directives.
	ErrBadVerb = errors.New("bad format directive")
)

// Sprintf renders the whole message with fmt.Fprintf. Argument mismatches
// are rendered inline the way fmt does (%!d(string=x)) rather than
// returned as errors.
type Sprintf struct {
	// OmitNewline disables the line terminator appended to every message
	OmitNewline bool
}

// Format implements Formatter.
func (s Sprintf) Format(w Writer, format string, args []any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return err
	}
	if s.OmitNewline {
		return nil
	}
	return w.WriteByte('\n')
}

// ensureNewline terminates msg in buf when the formatter did not.
func ensureNewline(buf *bytes.Buffer, msg []byte) {
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

// trimNewline drops one trailing line terminator.
func trimNewline(msg []byte) []byte {
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		return msg[:n-1]
	}
	return msg
}

func timestampFormat(cfg Config, def string) string {
	if cfg.TimestampFormat == "" {
		return def
	}
	return cfg.TimestampFormat
}
