// Package config loads the crewcut TOML configuration cascade into
// typed per-section structs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// configFileNames is the discovery cascade, checked in order.
var configFileNames = []string{"crewcut.toml", ".crewcut.toml"}

// Config is the top-level crewcut configuration.
type Config struct {
	Cpp     CppConfig     `toml:"cpp"`
	Git     GitConfig     `toml:"git"`
	File    FileConfig    `toml:"file"`
	Exclude ExcludeConfig `toml:"exclude"`
}

// Load reads configuration from a TOML file. If path is empty the
// discovery cascade is used instead. Unknown keys are rejected so typos
// in toggles fail loudly rather than silently using defaults.
func Load(path string, log *slog.Logger) (*Config, error) {
	if path == "" {
		return discover(log)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data, path)
}

// discover applies the cascade: exactly one config file present loads
// it; several is ambiguous and falls back to defaults with a warning;
// none quietly uses defaults.
func discover(log *slog.Logger) (*Config, error) {
	var found []string
	for _, name := range configFileNames {
		if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
			found = append(found, name)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking config %s: %w", name, err)
		}
	}

	switch len(found) {
	case 1:
		data, err := os.ReadFile(found[0])
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		return parse(data, found[0])
	case 0:
		log.Debug("no config file found, using default configuration")
		return defaults(), nil
	default:
		log.Warn("multiple config files found, using no config file", "files", found)
		return defaults(), nil
	}
}

func parse(data []byte, path string) (*Config, error) {
	cfg := defaults()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Cpp:     DefaultCppConfig(),
		Git:     DefaultGitConfig(),
		File:    DefaultFileConfig(),
		Exclude: DefaultExcludeConfig(),
	}
}
