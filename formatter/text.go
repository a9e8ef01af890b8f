package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/philipp01105/catlog/core"
)

// TextLayout frames messages as human-readable lines
type TextLayout struct {
	Config
	brackets [core.DebugLevel + 1]string
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.SilentLevel:  " [SILENT] ",
	core.FatalLevel:   " [FATAL] ",
	core.ErrorLevel:   " [ERROR] ",
	core.WarningLevel: " [WARNING] ",
	core.InfoLevel:    " [INFO] ",
	core.VerboseLevel: " [VERBOSE] ",
	core.DebugLevel:   " [DEBUG] ",
}

var levelColors = [...][]color.Attribute{
	core.SilentLevel:  {color.Reset},
	core.FatalLevel:   {color.FgHiRed, color.Bold},
	core.ErrorLevel:   {color.FgRed},
	core.WarningLevel: {color.FgYellow},
	core.InfoLevel:    {color.FgGreen},
	core.VerboseLevel: {color.FgCyan},
	core.DebugLevel:   {color.FgHiBlack},
}

// NewTextLayout creates a new text layout
func NewTextLayout(cfg Config) *TextLayout {
	cfg.TimestampFormat = timestampFormat(cfg, time.RFC3339)
	l := &TextLayout{Config: cfg}
	for lvl, bracket := range levelBrackets {
		if !cfg.Color {
			l.brackets[lvl] = bracket
			continue
		}
		c := color.New(levelColors[lvl]...)
		c.EnableColor()
		l.brackets[lvl] = " " + c.Sprint(bracket[1:len(bracket)-1]) + " "
	}
	return l
}

// Encode implements Layout.
func (l *TextLayout) Encode(buf *bytes.Buffer, rec *core.Record, msg []byte) {
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), l.TimestampFormat))

	if rec.Level >= core.SilentLevel && int(rec.Level) < len(l.brackets) {
		buf.WriteString(l.brackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if rec.Category != "" {
		buf.WriteString(rec.Category)
		buf.WriteByte(' ')
	}

	if l.IncludeCaller && rec.Caller.Defined {
		buf.WriteString(rec.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		buf.WriteString(": ")
	}

	buf.Write(msg)
	ensureNewline(buf, msg)
}
