// Package formatter turns log calls into bytes.
//
// It has two halves. Formatter renders a printf-style format string and
// its arguments into a Writer; the logger hands it a sink.Buffer so the
// rendered text streams to the sink in bounded chunks. Printf is the
// streaming implementation: literal runs and individual verbs are written
// as soon as they are produced, common verb/type pairs are converted with
// strconv Append functions, and only the remaining directives go through
// fmt, one value at a time. Mismatched arguments are reported as errors
// (ErrMissingArgument, ErrExtraArgument, ErrBadArgument, ErrBadVerb)
// instead of being rendered inline.
//
// Layout is the other half: sinks use it to frame a finished message with
// its record metadata. TextLayout produces
//
//	2026-10-18T09:30:00Z [INFO] net conn.go:42: dialing 10.0.0.1
//
// and JSONLayout emits one JSON object per line. Both build the output in
// a caller-provided bytes.Buffer using Append-style helpers and
// pre-computed level strings.
package formatter
