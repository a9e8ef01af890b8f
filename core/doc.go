// Package core defines the shared types used across catlog.
//
// It provides the Level type and the acceptance rule used for severity
// filtering, the Record type that describes one accepted log call, and
// caller capture helpers.
//
// Levels are ordered from least to most verbose. A message is accepted
// by a threshold when its level is less than or equal to the threshold,
// so SilentLevel accepts nothing and DebugLevel accepts everything.
// SilentLevel is only meaningful as a threshold; a message tagged with
// it is never accepted.
//
// The coarse clock caches time.Now every 500µs for sinks that stamp
// records at high rates and can tolerate sub-millisecond skew.
package core
