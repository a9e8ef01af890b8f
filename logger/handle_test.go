package logger

import (
	"errors"
	"runtime"
	"testing"

	"github.com/philipp01105/catlog/core"
)

// callerLine returns the line it was called from.
func callerLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestHandle_CapturesCallSite(t *testing.T) {
	skipIfElided(t, core.InfoLevel)

	l, rec := newTestLogger(t, core.DebugLevel)
	h := l.For("net")

	want := callerLine() + 1
	h.Infof("connected to %s", "db1")

	msgs := rec.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	if msgs[0].File != thisFile(t) {
		t.Errorf("File = %q, want %q", msgs[0].File, thisFile(t))
	}
	if msgs[0].Line != want {
		t.Errorf("Line = %d, want %d", msgs[0].Line, want)
	}
	if msgs[0].Category != "net" || msgs[0].Text != "connected to db1\n" {
		t.Errorf("message = %+v", msgs[0])
	}
}

func TestHandle_AllLevels(t *testing.T) {
	l, rec := newTestLogger(t, core.DebugLevel)
	h := l.For("all")

	tests := []struct {
		name  string
		log   func(string, ...any) error
		level core.Level
	}{
		{"Fatalf", h.Fatalf, core.FatalLevel},
		{"Errorf", h.Errorf, core.ErrorLevel},
		{"Warningf", h.Warningf, core.WarningLevel},
		{"Infof", h.Infof, core.InfoLevel},
		{"Verbosef", h.Verbosef, core.VerboseLevel},
		{"Debugf", h.Debugf, core.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !compiled(tt.level) {
				t.Skipf("%s elided in this build", tt.level)
			}
			rec.Reset()
			if err := tt.log("%s", tt.name); err != nil {
				t.Fatal(err)
			}
			msgs := rec.Messages()
			if len(msgs) != 1 || msgs[0].Level != tt.level || msgs[0].Text != tt.name+"\n" {
				t.Errorf("messages = %+v", msgs)
			}
		})
	}
}

func TestHandle_CategoryVariants(t *testing.T) {
	l, rec := newTestLogger(t, core.InfoLevel)
	l.SetCategoryLevel("verbose-cat", core.DebugLevel)
	h := l.For("default-cat")

	tests := []struct {
		name  string
		log   func(string, string, ...any) error
		level core.Level
	}{
		{"FatalfC", h.FatalfC, core.FatalLevel},
		{"ErrorfC", h.ErrorfC, core.ErrorLevel},
		{"WarningfC", h.WarningfC, core.WarningLevel},
		{"InfofC", h.InfofC, core.InfoLevel},
		{"VerbosefC", h.VerbosefC, core.VerboseLevel},
		{"DebugfC", h.DebugfC, core.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !compiled(tt.level) {
				t.Skipf("%s elided in this build", tt.level)
			}
			rec.Reset()
			tt.log("verbose-cat", "m")
			msgs := rec.Messages()
			if len(msgs) != 1 || msgs[0].Category != "verbose-cat" || msgs[0].Level != tt.level {
				t.Errorf("messages = %+v", msgs)
			}
		})
	}

	rec.Reset()
	h.DebugfC("default-cat", "dropped")
	h.Debugf("dropped")
	if len(rec.Events()) != 0 {
		t.Error("DEBUG delivered to a category without override")
	}
}

func TestHandle_LogfAndWith(t *testing.T) {
	skipIfElided(t, core.WarningLevel, core.ErrorLevel)

	l, rec := newTestLogger(t, core.WarningLevel)
	h := l.For("a").With("b")

	if h.Category() != "b" {
		t.Errorf("Category() = %q", h.Category())
	}
	h.Logf(core.WarningLevel, "w")
	h.Logf(core.InfoLevel, "dropped")
	h.LogfC(core.ErrorLevel, "c", "e")
	h.Logf(core.SilentLevel, "never")

	msgs := rec.Messages()
	if len(msgs) != 2 || msgs[0].Category != "b" || msgs[1].Category != "c" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestHandle_Enabled(t *testing.T) {
	skipIfElided(t, core.InfoLevel)

	l, _ := newTestLogger(t, core.InfoLevel)
	h := l.For("x")

	if !h.Enabled(core.InfoLevel) {
		t.Error("INFO disabled under INFO")
	}
	if h.Enabled(core.DebugLevel) {
		t.Error("DEBUG enabled under INFO")
	}
	if h.Enabled(core.SilentLevel) {
		t.Error("SILENT enabled")
	}
}

func TestHandle_ErrorPropagation(t *testing.T) {
	skipIfElided(t, core.ErrorLevel)

	l, rec := newTestLogger(t, core.DebugLevel)
	errEnd := errors.New("end failed")
	rec.FailEnd = errEnd

	if err := l.For("x").Errorf("boom"); !errors.Is(err, errEnd) {
		t.Errorf("Errorf() error = %v, want %v", err, errEnd)
	}
}
