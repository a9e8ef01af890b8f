// Package filesink provides a Sink that appends framed messages to a file.
//
// Output goes through a bufio.Writer. Call Flush to push buffered lines
// to the file, or set AutoFlush to flush after every message. Close
// flushes, syncs and closes the file.
package filesink
