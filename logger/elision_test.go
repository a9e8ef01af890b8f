package logger

import (
	"testing"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink/sinktest"
)

// requireElided checks that level is compiled out of Handle while the
// runtime entry point and the remaining severities keep working. call
// invokes the severity-specific Handle methods for level.
func requireElided(t *testing.T, level core.Level, call func(h Handle)) {
	t.Helper()

	if compiled(level) {
		t.Fatalf("compiled(%s) = true", level)
	}

	l, rec := newTestLogger(t, core.DebugLevel)
	h := l.For("x")
	call(h)
	h.Logf(level, "elided")
	h.LogfC(level, "x", "elided")
	if h.Enabled(level) {
		t.Errorf("Enabled(%s) = true with the level compiled out", level)
	}
	if len(rec.Events()) != 0 {
		t.Fatalf("elided calls reached the sink: %v", rec.Kinds())
	}

	for _, other := range core.Levels {
		if other == level || !compiled(other) {
			continue
		}
		rec.Reset()
		h.Logf(other, "kept")
		if len(rec.Messages()) != 1 {
			t.Errorf("%s was dropped by the %s tag", other, level)
		}
	}

	rec.Reset()
	l.Log(level, "x", "f.go", 1, "kept")
	sinktest.RequireWellFormed(t, rec, 0)
	if len(rec.Messages()) != 1 {
		t.Errorf("Log() at %s was dropped", level)
	}
}

// skipIfElided skips tests that log through Handle at a level the build
// tags compiled out.
func skipIfElided(t *testing.T, levels ...core.Level) {
	t.Helper()
	for _, level := range levels {
		if !compiled(level) {
			t.Skipf("%s elided in this build", level)
		}
	}
}
