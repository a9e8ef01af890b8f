package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/philipp01105/catlog/core"
	"github.com/philipp01105/catlog/logger"
)

var (
	// ErrInvalidSpec is returned for malformed configuration input.
	ErrInvalidSpec = errors.New("invalid log configuration")
	// ErrUnknownFormat is returned by LoadFile for unsupported extensions.
	ErrUnknownFormat = errors.New("unknown configuration file format")
)

// Config is a set of thresholds. The zero Config changes nothing.
type Config struct {
	// Level is the global threshold, used only when LevelSet is true
	Level    core.Level
	LevelSet bool
	// Categories holds per-category overrides
	Categories map[string]core.Level
}

// Parse parses the compact form "level,category=level,...". Whitespace
// around tokens is ignored and empty tokens are skipped. A later pair for
// the same category replaces an earlier one.
func Parse(spec string) (Config, error) {
	var cfg Config
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		name, value, isPair := strings.Cut(tok, "=")
		if !isPair {
			if cfg.LevelSet {
				return Config{}, fmt.Errorf("%w: second global level %q", ErrInvalidSpec, tok)
			}
			lvl, err := core.ParseLevel(tok)
			if err != nil {
				return Config{}, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
			}
			cfg.Level, cfg.LevelSet = lvl, true
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return Config{}, fmt.Errorf("%w: empty category in %q", ErrInvalidSpec, tok)
		}
		lvl, err := core.ParseLevel(value)
		if err != nil {
			return Config{}, fmt.Errorf("%w: category %q: %w", ErrInvalidSpec, name, err)
		}
		cfg.setCategory(name, lvl)
	}
	return cfg, nil
}

// MustParse is Parse that panics on error.
func MustParse(spec string) Config {
	cfg, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return cfg
}

// FromEnv parses the environment variable name. ok is false when the
// variable is not set.
func FromEnv(name string) (cfg Config, ok bool, err error) {
	spec, ok := os.LookupEnv(name)
	if !ok {
		return Config{}, false, nil
	}
	cfg, err = Parse(spec)
	if err != nil {
		return Config{}, true, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, true, nil
}

// FromMap builds a Config from decoded data with the keys "level" and
// "categories". Values are coerced with spf13/cast, so numbers and
// strings are both accepted.
func FromMap(m map[string]any) (Config, error) {
	var cfg Config
	for key, raw := range m {
		switch strings.ToLower(key) {
		case "level":
			s, err := cast.ToStringE(raw)
			if err != nil {
				return Config{}, fmt.Errorf("%w: level: %w", ErrInvalidSpec, err)
			}
			lvl, err := core.ParseLevel(s)
			if err != nil {
				return Config{}, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
			}
			cfg.Level, cfg.LevelSet = lvl, true

		case "categories":
			cats, err := cast.ToStringMapE(raw)
			if err != nil {
				return Config{}, fmt.Errorf("%w: categories: %w", ErrInvalidSpec, err)
			}
			for name, v := range cats {
				if err := checkCategory(name); err != nil {
					return Config{}, err
				}
				s, err := cast.ToStringE(v)
				if err != nil {
					return Config{}, fmt.Errorf("%w: category %q: %w", ErrInvalidSpec, name, err)
				}
				lvl, err := core.ParseLevel(s)
				if err != nil {
					return Config{}, fmt.Errorf("%w: category %q: %w", ErrInvalidSpec, name, err)
				}
				cfg.setCategory(name, lvl)
			}

		default:
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, key)
		}
	}
	return cfg, nil
}

// checkCategory rejects names the compact form cannot carry.
func checkCategory(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty category", ErrInvalidSpec)
	case strings.ContainsAny(name, ",="):
		return fmt.Errorf("%w: category %q contains ',' or '='", ErrInvalidSpec, name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: category %q has surrounding whitespace", ErrInvalidSpec, name)
	}
	return nil
}

func (c *Config) setCategory(name string, lvl core.Level) {
	if c.Categories == nil {
		c.Categories = make(map[string]core.Level)
	}
	c.Categories[name] = lvl
}

// Merge returns c with the settings of other layered on top.
func (c Config) Merge(other Config) Config {
	out := Config{Level: c.Level, LevelSet: c.LevelSet, Categories: maps.Clone(c.Categories)}
	if other.LevelSet {
		out.Level, out.LevelSet = other.Level, true
	}
	for name, lvl := range other.Categories {
		out.setCategory(name, lvl)
	}
	return out
}

// Apply sets the global threshold (if set) and every override on l.
// nil applies to the default Logger. Existing overrides for other
// categories are left alone.
func (c Config) Apply(l *logger.Logger) {
	if l == nil {
		l = logger.Default()
	}
	if c.LevelSet {
		l.SetLevel(c.Level)
	}
	for name, lvl := range c.Categories {
		l.SetCategoryLevel(name, lvl)
	}
}

// String renders c in the compact form with categories sorted by name.
// Parse and FromMap reject category names containing ',' or '=' or
// surrounding whitespace; a hand-built Config holding such a name
// renders text that does not parse back to the same Config.
func (c Config) String() string {
	var parts []string
	if c.LevelSet {
		parts = append(parts, strings.ToLower(c.Level.String()))
	}
	for _, name := range slices.Sorted(maps.Keys(c.Categories)) {
		parts = append(parts, name+"="+strings.ToLower(c.Categories[name].String()))
	}
	return strings.Join(parts, ",")
}
