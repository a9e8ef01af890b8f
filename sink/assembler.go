package sink

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/catlog/core"
)

// maxRetainedBuffer caps the message buffer kept between messages so one
// huge message does not pin memory for the life of the sink.
const maxRetainedBuffer = 64 * 1024

// EmitFunc receives one complete message. rec and msg are only valid
// during the call.
type EmitFunc func(rec *core.Record, msg []byte) error

// Assembler is a Sink that collects each message and hands it to an
// EmitFunc on EndLog. See the package documentation for its locking.
type Assembler struct {
	mu    sync.Mutex
	emit  EmitFunc
	now   func() time.Time
	rec   core.Record
	buf   bytes.Buffer
	stats *Stats
}

// NewAssembler creates an Assembler. clock stamps records at BeginLog;
// nil means time.Now.
func NewAssembler(emit EmitFunc, clock func() time.Time) *Assembler {
	if clock == nil {
		clock = time.Now
	}
	a := &Assembler{
		emit:  emit,
		now:   clock,
		stats: NewStats(),
	}
	a.buf.Grow(256)
	return a
}

// BeginLog implements Sink. It holds the assembler until EndLog.
func (a *Assembler) BeginLog(level core.Level, category, file string, line int) error {
	a.mu.Lock()
	a.rec = core.Record{
		Time:     a.now(),
		Level:    level,
		Category: category,
		Caller:   core.NewCallerInfo(file, line),
	}
	a.buf.Reset()
	return nil
}

// Feed implements Sink.
func (a *Assembler) Feed(p []byte) error {
	a.buf.Write(p)
	a.stats.AddFeed(len(p))
	return nil
}

// EndLog implements Sink. It emits the collected message and releases
// the assembler.
func (a *Assembler) EndLog() error {
	defer a.mu.Unlock()

	err := a.emit(&a.rec, a.buf.Bytes())
	if err != nil {
		a.stats.IncrementFailed()
	} else {
		a.stats.IncrementProcessed(a.rec.Level)
	}

	a.rec = core.Record{}
	if a.buf.Cap() > maxRetainedBuffer {
		a.buf = bytes.Buffer{}
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (a *Assembler) Stats() Snapshot {
	return a.stats.GetSnapshot()
}

// MessageText returns msg as a string without its line terminator.
// Bridge sinks use it since their libraries terminate lines themselves.
func MessageText(msg []byte) string {
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	return string(msg)
}
