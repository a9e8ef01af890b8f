package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// LoadYAML reads a YAML document. Empty input yields the zero Config.
func LoadYAML(r io.Reader) (Config, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: yaml: %w", ErrInvalidSpec, err)
	}
	return FromMap(m)
}

// LoadTOML reads a TOML document.
func LoadTOML(r io.Reader) (Config, error) {
	var m map[string]any
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return Config{}, fmt.Errorf("%w: toml: %w", ErrInvalidSpec, err)
	}
	return FromMap(m)
}

// LoadFile reads path as YAML (.yaml, .yml) or TOML (.toml).
func LoadFile(path string) (Config, error) {
	var load func(io.Reader) (Config, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".toml":
		load = LoadTOML
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
