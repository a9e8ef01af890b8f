// Package consolesink provides a Sink that writes one framed line per
// message to an io.Writer, stderr by default.
//
// Messages are assembled in memory and written with a single Write call
// on EndLog, so concurrent log calls never interleave on the terminal.
// Colors are enabled automatically when the writer is a terminal and
// NO_COLOR is not set.
//
// Usage:
//
//	s := consolesink.New(consolesink.Config{})
//	logger.InstallSink(s)
package consolesink
