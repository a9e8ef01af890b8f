//go:build nolog_debug

package logger

import (
	"testing"

	"github.com/philipp01105/catlog/core"
)

func TestCompiled_NologDebug(t *testing.T) {
	requireElided(t, core.DebugLevel, func(h Handle) {
		h.Debugf("elided")
		h.DebugfC("x", "elided")
	})
}
