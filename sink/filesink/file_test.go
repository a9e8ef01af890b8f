package filesink

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/formatter"
	"github.com/philipp01105/catlog/logger"
)

func newFileLogger(t *testing.T, cfg Config) (*logger.Logger, *Sink) {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return logger.NewBuilder().WithSink(s).WithLevel(core.DebugLevel).MustBuild(), s
}

func TestNew_RequiresFilename(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNoFilename)
}

func TestFileSink_WritesAndFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")
	l, s := newFileLogger(t, Config{Filename: path})

	require.NoError(t, l.Log(core.InfoLevel, "db", "/src/query.go", 9, "rows=%d", 12))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data, "line should still be buffered")

	require.NoError(t, s.Flush())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), " [INFO] db query.go:9: rows=12\n")
	assert.Equal(t, int64(len(data)), s.Size())
}

func TestFileSink_AutoFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auto.log")
	l, _ := newFileLogger(t, Config{
		Filename:  path,
		AutoFlush: true,
		Layout:    formatter.NewJSONLayout(formatter.Config{}),
	})

	l.Log(core.ErrorLevel, "net", "f.go", 1, "down")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"down"`)
}

func TestFileSink_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.log")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	l, s := newFileLogger(t, Config{Filename: path})
	assert.Equal(t, int64(len("previous\n")), s.Size())

	l.Log(core.WarningLevel, "c", "f.go", 1, "next")
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "previous", lines[0])
	assert.Contains(t, lines[1], "next")
}

func TestFileSink_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "close.log")
	l, s := newFileLogger(t, Config{Filename: path})

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	err := l.Log(core.InfoLevel, "c", "f.go", 1, "late")
	assert.True(t, errors.Is(err, ErrClosed), "Log() error = %v", err)
	assert.ErrorIs(t, s.Flush(), ErrClosed)
	assert.Equal(t, uint64(1), s.Stats().Failed)
}

func TestFileSink_ConcurrentLinesStayWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.log")
	l, s := newFileLogger(t, Config{Filename: path})

	const goroutines, perG = 8, 50
	long := strings.Repeat("x", 150)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			h := l.For("worker")
			for i := 0; i < perG; i++ {
				h.Infof("g=%d i=%d %s", g, i, long)
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, goroutines*perG)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, long), "interleaved line %q", line)
	}
}
