// Package sink defines the Sink interface that consumes accepted log
// messages, and the building blocks shared by its implementations.
//
// A sink sees every accepted message as exactly one BeginLog call, zero
// or more Feed calls carrying non-empty chunks of the rendered text in
// order, and exactly one EndLog call. Rejected messages never reach it.
//
// Buffer is the bounded relay between a formatter and a sink: it collects
// writes in a fixed 64 byte array and feeds the sink each time the array
// fills, plus once more on Close for any remainder. A message of any
// length therefore costs at most len/64+1 Feed calls and no heap growth.
//
// Assembler turns the begin/feed/end stream back into whole messages for
// sinks that need them (the console, file and bridge sinks). It holds a
// mutex from BeginLog to EndLog so messages from concurrent goroutines are
// never interleaved. A consequence is that logging from inside a
// formatting argument (a String method that itself logs) to the same
// assembler deadlocks; such re-entrant logging is not supported.
//
// Built-in sinks live in subpackages:
//
//   - consolesink writes framed lines to any io.Writer (default: stderr).
//   - filesink appends framed lines to a file through a bufio.Writer.
//   - slogsink, zapsink, zerologsink, logrussink and hclogsink forward
//     messages to the respective logging libraries.
//   - sinktest records the raw call sequence for tests.
//
// Sinks built on Assembler count processed messages per level, feeds,
// bytes and failed deliveries in a Stats value.
package sink
