// Package logger is the public API of catlog. Most users only need to
// import this package and one sink.
//
// A Logger holds the settings that decide which messages are delivered:
// the installed sink, a global threshold, and per-category threshold
// overrides. It is built with the Builder, which refuses to build
// without a sink:
//
//	log := logger.NewBuilder().
//	    WithSink(consolesink.New(consolesink.Config{})).
//	    WithLevel(core.InfoLevel).
//	    WithCategoryLevel("net", core.DebugLevel).
//	    MustBuild()
//
// Call sites log through a Handle, a small immutable value bound to one
// category, usually declared once per file:
//
//	var netlog = log.For("net")
//
//	netlog.Infof("dialing %s", addr)
//	netlog.DebugfC("net/tls", "handshake took %v", d)
//
// The threshold check runs before any formatting work, so a rejected
// message costs one atomic load, at most one map lookup and an integer
// comparison. Source file and line are captured only for accepted
// messages. Each accepted message reaches the sink as exactly one
// BeginLog, zero or more Feed calls of at most sink.BufferSize bytes,
// and one EndLog, on every exit path including panics and errors.
// Formatter and sink errors are returned from the log call.
//
// Settings may change at any time from any goroutine. A change takes
// effect for every call that starts its threshold check after the setter
// returns; calls already past the check finish with the sink they saw.
//
// The package also keeps a process-wide default Logger for programs that
// do not want to pass one around. It starts with no sink and a SILENT
// threshold. Accepting a message while no sink is installed is a wiring
// bug and panics with an error wrapping ErrNoSink.
//
// # Compile-time elision
//
// Handle methods for a severity compile to nothing when the matching build
// tag is set: nolog_debug, nolog_verbose, nolog_info, nolog_warning,
// nolog_error, nolog_fatal. The release tag implies nolog_debug. Go still
// evaluates the arguments at the call site; guard expensive ones with
// Handle.Enabled.
package logger
