package sink

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/catlog/core"
)

func TestAssembler_EmitsWholeMessage(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	var (
		got    string
		gotRec core.Record
	)
	a := NewAssembler(func(rec *core.Record, msg []byte) error {
		got = string(msg)
		gotRec = *rec
		return nil
	}, func() time.Time { return fixed })

	a.BeginLog(core.WarningLevel, "net", "/src/conn.go", 12)
	a.Feed([]byte("hello "))
	a.Feed([]byte("world\n"))
	if err := a.EndLog(); err != nil {
		t.Fatalf("EndLog() error = %v", err)
	}

	if got != "hello world\n" {
		t.Errorf("msg = %q", got)
	}
	if gotRec.Level != core.WarningLevel || gotRec.Category != "net" || gotRec.Caller.ShortFile != "conn.go" || gotRec.Caller.Line != 12 {
		t.Errorf("rec = %+v", gotRec)
	}
	if !gotRec.Time.Equal(fixed) {
		t.Errorf("Time = %v, want %v", gotRec.Time, fixed)
	}

	snap := a.Stats()
	if snap.Processed[core.WarningLevel] != 1 || snap.Feeds != 2 || snap.Bytes != 12 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestAssembler_EmitErrorPropagates(t *testing.T) {
	errEmit := errors.New("emit failed")
	a := NewAssembler(func(*core.Record, []byte) error { return errEmit }, nil)

	a.BeginLog(core.InfoLevel, "c", "", 0)
	if err := a.EndLog(); !errors.Is(err, errEmit) {
		t.Fatalf("EndLog() error = %v, want %v", err, errEmit)
	}
	if a.Stats().Failed != 1 {
		t.Errorf("Failed = %d, want 1", a.Stats().Failed)
	}

	// The assembler must be released even after a failed emit.
	done := make(chan struct{})
	go func() {
		a.BeginLog(core.InfoLevel, "c", "", 0)
		a.EndLog()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("assembler still locked after failed EndLog")
	}
}

func TestAssembler_SerializesConcurrentMessages(t *testing.T) {
	var (
		mu   sync.Mutex
		msgs []string
	)
	a := NewAssembler(func(_ *core.Record, msg []byte) error {
		mu.Lock()
		msgs = append(msgs, string(msg))
		mu.Unlock()
		return nil
	}, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			part := strings.Repeat(string(rune('a'+g)), 10)
			for i := 0; i < 50; i++ {
				a.BeginLog(core.InfoLevel, "c", "", 0)
				a.Feed([]byte(part))
				a.Feed([]byte(part))
				a.EndLog()
			}
		}(g)
	}
	wg.Wait()

	if len(msgs) != 400 {
		t.Fatalf("got %d messages, want 400", len(msgs))
	}
	for _, m := range msgs {
		if m != strings.Repeat(m[:1], 20) {
			t.Fatalf("interleaved message %q", m)
		}
	}
}

func TestAssembler_DropsLargeBuffer(t *testing.T) {
	a := NewAssembler(func(*core.Record, []byte) error { return nil }, nil)
	a.BeginLog(core.InfoLevel, "c", "", 0)
	a.Feed(make([]byte, maxRetainedBuffer+1))
	a.EndLog()

	if a.buf.Cap() > maxRetainedBuffer {
		t.Errorf("buffer of %d bytes retained", a.buf.Cap())
	}
}
