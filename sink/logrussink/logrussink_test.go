package logrussink

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/logger"
)

func newHookedLogger(level logrus.Level) (*logrus.Logger, *test.Hook) {
	ll, hook := test.NewNullLogger()
	ll.SetLevel(level)
	return ll, hook
}

func TestSink_Forwards(t *testing.T) {
	ll, hook := newHookedLogger(logrus.TraceLevel)
	l := logger.NewBuilder().WithSink(New(ll)).WithLevel(core.DebugLevel).MustBuild()

	require.NoError(t, l.Log(core.InfoLevel, "api", "/src/server.go", 120, "listening on %s", ":8080"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "listening on :8080", entry.Message)
	assert.Equal(t, "api", entry.Data[CategoryKey])
	assert.Equal(t, "/src/server.go", entry.Data[FileKey])
	assert.Equal(t, 120, entry.Data[LineKey])
}

func TestSink_FatalDoesNotExit(t *testing.T) {
	ll, hook := newHookedLogger(logrus.TraceLevel)
	ll.ExitFunc = func(int) { t.Fatal("logrus exit called") }
	l := logger.NewBuilder().WithSink(New(ll)).WithLevel(core.DebugLevel).MustBuild()

	l.For("c").Fatalf("recorded")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.FatalLevel, hook.LastEntry().Level)
}

func TestSink_LogrusLevelFilters(t *testing.T) {
	ll, hook := newHookedLogger(logrus.InfoLevel)
	l := logger.NewBuilder().WithSink(New(ll)).WithLevel(core.DebugLevel).MustBuild()

	l.Log(core.VerboseLevel, "c", "f.go", 1, "debug")
	l.Log(core.DebugLevel, "c", "f.go", 1, "trace")
	assert.Empty(t, hook.AllEntries())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, logrus.FatalLevel, Level(core.FatalLevel))
	assert.Equal(t, logrus.ErrorLevel, Level(core.ErrorLevel))
	assert.Equal(t, logrus.WarnLevel, Level(core.WarningLevel))
	assert.Equal(t, logrus.InfoLevel, Level(core.InfoLevel))
	assert.Equal(t, logrus.DebugLevel, Level(core.VerboseLevel))
	assert.Equal(t, logrus.TraceLevel, Level(core.DebugLevel))
}
