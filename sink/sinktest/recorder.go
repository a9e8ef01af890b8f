// Package sinktest provides a recording Sink for tests.
package sinktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/catlog/core"
)

// Kind identifies a sink call.
type Kind int

const (
	// Begin is a BeginLog call
	Begin Kind = iota
	// Feed is a Feed call
	Feed
	// End is an EndLog call
	End
)

// String returns the sink method name for k.
func (k Kind) String() string {
	switch k {
	case Begin:
		return "BeginLog"
	case Feed:
		return "Feed"
	case End:
		return "EndLog"
	default:
		return "Unknown"
	}
}

// Event is one recorded sink call.
type Event struct {
	Kind     Kind
	Level    core.Level
	Category string
	File     string
	Line     int
	Data     []byte
}

// Message is one begin/feed/end sequence reassembled from events.
type Message struct {
	Level    core.Level
	Category string
	File     string
	Line     int
	Text     string
	Feeds    []string
}

// Recorder is a Sink that records every call. The Fail* fields inject
// errors into the matching method.
type Recorder struct {
	mu     sync.Mutex
	events []Event

	FailBegin error
	FailFeed  error
	FailEnd   error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// BeginLog implements sink.Sink.
func (r *Recorder) BeginLog(level core.Level, category, file string, line int) error {
	r.record(Event{Kind: Begin, Level: level, Category: category, File: file, Line: line})
	return r.FailBegin
}

// Feed implements sink.Sink.
func (r *Recorder) Feed(p []byte) error {
	r.record(Event{Kind: Feed, Data: append([]byte(nil), p...)})
	return r.FailFeed
}

// EndLog implements sink.Sink.
func (r *Recorder) EndLog() error {
	r.record(Event{Kind: End})
	return r.FailEnd
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []Kind {
	events := r.Events()
	kinds := make([]Kind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Messages reassembles the recorded events into messages. A trailing
// sequence without EndLog is not returned.
func (r *Recorder) Messages() []Message {
	var (
		msgs []Message
		cur  *Message
	)
	for _, e := range r.Events() {
		switch e.Kind {
		case Begin:
			cur = &Message{Level: e.Level, Category: e.Category, File: e.File, Line: e.Line}
		case Feed:
			if cur != nil {
				cur.Text += string(e.Data)
				cur.Feeds = append(cur.Feeds, string(e.Data))
			}
		case End:
			if cur != nil {
				msgs = append(msgs, *cur)
				cur = nil
			}
		}
	}
	return msgs
}

// Reset clears the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// RequireWellFormed fails the test unless the recording is a series of
// BeginLog, non-empty Feed calls of at most maxChunk bytes, EndLog.
// maxChunk <= 0 disables the size check.
func RequireWellFormed(t testing.TB, r *Recorder, maxChunk int) {
	t.Helper()

	open := false
	for i, e := range r.Events() {
		switch e.Kind {
		case Begin:
			require.False(t, open, "event %d: BeginLog inside an open message", i)
			open = true
		case Feed:
			require.True(t, open, "event %d: Feed outside a message", i)
			require.NotEmpty(t, e.Data, "event %d: empty Feed", i)
			if maxChunk > 0 {
				require.LessOrEqual(t, len(e.Data), maxChunk, "event %d: chunk too large", i)
			}
		case End:
			require.True(t, open, "event %d: EndLog without BeginLog", i)
			open = false
		}
	}
	require.False(t, open, "message left open")
}
