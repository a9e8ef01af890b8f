package sink

import (
	"sync/atomic"

	"github.com/philipp01105/catlog/core"
)

// Stats tracks sink statistics
type Stats struct {
	processed [core.DebugLevel + 1]atomic.Uint64
	feeds     atomic.Uint64
	bytes     atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically counts a delivered message. Levels outside
// the known range are ignored.
func (s *Stats) IncrementProcessed(level core.Level) {
	if level < core.SilentLevel || level > core.DebugLevel {
		return
	}
	s.processed[level].Add(1)
}

// IncrementFailed counts a message whose delivery returned an error
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// AddFeed counts one Feed call of n bytes
func (s *Stats) AddFeed(n int) {
	s.feeds.Add(1)
	s.bytes.Add(uint64(n))
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if level < core.SilentLevel || level > core.DebugLevel {
		return 0
	}
	return s.processed[level].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.feeds.Store(0)
	s.bytes.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	Feeds          uint64
	Bytes          uint64
	Failed         uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, len(core.Levels)),
		Feeds:     s.feeds.Load(),
		Bytes:     s.bytes.Load(),
		Failed:    s.failed.Load(),
	}
	for _, l := range core.Levels {
		n := s.processed[l].Load()
		snap.Processed[l] = n
		snap.ProcessedTotal += n
	}
	return snap
}
