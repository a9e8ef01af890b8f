package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record describes one accepted log call as seen by a sink: everything
// passed to BeginLog plus the time the message started.
type Record struct {
	Time     time.Time
	Level    Level
	Category string
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Defined   bool
}

// NewCallerInfo builds a CallerInfo from an explicit file and line.
// An empty file yields an undefined CallerInfo.
func NewCallerInfo(file string, line int) CallerInfo {
	if file == "" {
		return CallerInfo{Line: line}
	}
	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Defined:   true,
	}
}

// GetCaller retrieves caller information. skip counts frames above
// GetCaller itself, as in runtime.Caller.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}
	return NewCallerInfo(file, line)
}
