package logger

import "errors"

var (
	// ErrNilSink is returned by Builder.Build when no sink was given.
	ErrNilSink = errors.New("logger: sink is nil")

	// ErrNoSink is wrapped by the panic raised when a message passes the
	// threshold check while no sink is installed.
	ErrNoSink = errors.New("logger: no sink installed")
)
