package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/catlog/core"
)

// JSONLayout frames messages as one JSON object per line
type JSONLayout struct {
	Config
}

// NewJSONLayout creates a new JSON layout
func NewJSONLayout(cfg Config) *JSONLayout {
	cfg.TimestampFormat = timestampFormat(cfg, time.RFC3339Nano)
	return &JSONLayout{Config: cfg}
}

// Encode implements Layout. A single trailing line terminator of msg is
// dropped; the object itself is terminated by one.
func (l *JSONLayout) Encode(buf *bytes.Buffer, rec *core.Record, msg []byte) {
	buf.WriteString(`{"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), l.TimestampFormat))

	buf.WriteString(`","level":"`)
	buf.WriteString(rec.Level.String())
	buf.WriteByte('"')

	if rec.Category != "" {
		buf.WriteString(`,"category":"`)
		appendJSONString(buf, rec.Category)
		buf.WriteByte('"')
	}

	if l.IncludeCaller && rec.Caller.Defined {
		buf.WriteString(`,"caller":{"file":"`)
		appendJSONString(buf, rec.Caller.ShortFile)
		buf.WriteString(`","line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		buf.WriteByte('}')
	}

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, string(trimNewline(msg)))
	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
