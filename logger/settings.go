package logger

import (
	"maps"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/sink"
)

// settings is an immutable snapshot of a Logger's configuration.
// Writers publish a modified copy; readers never see a partial update.
type settings struct {
	sink       sink.Sink
	level      core.Level
	categories map[string]core.Level
}

// resolve returns the threshold for category: its override if one
// exists, else the global threshold.
func (s *settings) resolve(category string) core.Level {
	if len(s.categories) > 0 {
		if l, ok := s.categories[category]; ok {
			return l
		}
	}
	return s.level
}

func (s *settings) accepts(level core.Level, category string) bool {
	return core.Accepts(level, s.resolve(category))
}

func (s *settings) clone() *settings {
	return &settings{
		sink:       s.sink,
		level:      s.level,
		categories: maps.Clone(s.categories),
	}
}

// update applies fn to a copy of the current settings and publishes it.
func (l *Logger) update(fn func(next *settings)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := l.state.Load().clone()
	fn(next)
	l.state.Store(next)
}

// InstallSink replaces the active sink. A nil sink uninstalls it; any
// message accepted afterwards panics with ErrNoSink.
func (l *Logger) InstallSink(s sink.Sink) {
	l.update(func(next *settings) {
		next.sink = s
	})
}

// Sink returns the active sink, or nil.
func (l *Logger) Sink() sink.Sink {
	return l.state.Load().sink
}

// SetLevel replaces the global threshold. It applies to every category
// without an override.
func (l *Logger) SetLevel(level core.Level) {
	l.update(func(next *settings) {
		next.level = level
	})
}

// Level returns the global threshold.
func (l *Logger) Level() core.Level {
	return l.state.Load().level
}

// SetCategoryLevel sets the threshold for category, replacing any
// previous override. The override fully shadows the global threshold.
func (l *Logger) SetCategoryLevel(category string, level core.Level) {
	l.update(func(next *settings) {
		if next.categories == nil {
			next.categories = make(map[string]core.Level)
		}
		next.categories[category] = level
	})
}

// ClearCategoryLevel removes the override for category so it follows the
// global threshold again.
func (l *Logger) ClearCategoryLevel(category string) {
	l.update(func(next *settings) {
		delete(next.categories, category)
	})
}

// ResolveLevel returns the effective threshold for category.
func (l *Logger) ResolveLevel(category string) core.Level {
	return l.state.Load().resolve(category)
}

// CategoryLevels returns a copy of the per-category overrides.
func (l *Logger) CategoryLevels() map[string]core.Level {
	out := maps.Clone(l.state.Load().categories)
	if out == nil {
		out = make(map[string]core.Level)
	}
	return out
}

// Enabled reports whether a message at level in category would be
// delivered.
func (l *Logger) Enabled(level core.Level, category string) bool {
	return l.state.Load().accepts(level, category)
}
