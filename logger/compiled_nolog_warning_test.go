//go:build nolog_warning

package logger

import (
	"testing"

	"github.com/philipp01105/catlog/core"
)

func TestCompiled_NologWarning(t *testing.T) {
	requireElided(t, core.WarningLevel, func(h Handle) {
		h.Warningf("elided")
		h.WarningfC("x", "elided")
	})
}
