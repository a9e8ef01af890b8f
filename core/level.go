package core

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// Level represents the severity of a log message, or a threshold.
// Numerically larger levels are more verbose.
type Level int8

const (
	// SilentLevel as a threshold accepts nothing
	SilentLevel Level = iota
	// FatalLevel for unrecoverable failures
	FatalLevel
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for unexpected but handled conditions
	WarningLevel
	// InfoLevel for general informational messages
	InfoLevel
	// VerboseLevel for detailed progress information
	VerboseLevel
	// DebugLevel for debugging information
	DebugLevel
)

var levelNames = [...]string{
	SilentLevel:  "SILENT",
	FatalLevel:   "FATAL",
	ErrorLevel:   "ERROR",
	WarningLevel: "WARNING",
	InfoLevel:    "INFO",
	VerboseLevel: "VERBOSE",
	DebugLevel:   "DEBUG",
}

// Levels lists every message level from most to least severe.
var Levels = [...]Level{FatalLevel, ErrorLevel, WarningLevel, InfoLevel, VerboseLevel, DebugLevel}

// String returns the string representation of the level
func (l Level) String() string {
	if l >= SilentLevel && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l can be carried by a message.
func (l Level) Valid() bool {
	return l >= FatalLevel && l <= DebugLevel
}

// Enabled reports whether a message at level l passes threshold.
func (l Level) Enabled(threshold Level) bool {
	return Accepts(l, threshold)
}

// Accepts is the filtering rule: a message is accepted iff its level is
// a valid message level no more verbose than the threshold.
func Accepts(message, threshold Level) bool {
	return message > SilentLevel && message <= threshold
}

// ParseLevel converts a level name to a Level. Names are case-insensitive;
// numeric strings 0..6 are accepted as well.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SILENT", "OFF", "NONE":
		return SilentLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "VERBOSE":
		return VerboseLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= int(SilentLevel) && n <= int(DebugLevel) {
		return Level(n), nil
	}
	return SilentLevel, &levelError{name: s}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l < SilentLevel || l > DebugLevel {
		return nil, &levelError{name: strconv.Itoa(int(l))}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

type levelError struct {
	name string
}

func (e *levelError) Error() string {
	return ErrInvalidLevel.Error() + ": " + strconv.Quote(e.name)
}

func (e *levelError) Unwrap() error {
	return ErrInvalidLevel
}
