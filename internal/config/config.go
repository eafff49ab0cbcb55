// Package config loads the linegrep command-line settings file.
//
// Settings are read from YAML (.yaml, .yml) or TOML (.toml), chosen by file
// extension. Missing values fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/coregx/linegrep/meta"
)

const (
	// EnvVar names the environment variable holding a settings file path.
	EnvVar = "LINEGREP_CONFIG"

	// DefaultFile is loaded from the working directory when present.
	DefaultFile = ".linegrep.yaml"
)

// Color modes.
const (
	ColorNever  = "never"
	ColorAlways = "always"
	ColorAuto   = "auto"
)

// ErrUnsupportedFormat is returned for settings files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Settings holds the command-line settings.
type Settings struct {
	Color    string         `yaml:"color" toml:"color"`
	LogLevel string         `yaml:"log_level" toml:"log_level"`
	Engine   EngineSettings `yaml:"engine" toml:"engine"`
}

// EngineSettings overrides parts of the engine configuration. Zero values
// keep the engine defaults.
type EngineSettings struct {
	Prefilter       *bool `yaml:"prefilter" toml:"prefilter"`
	LiteralEngine   *bool `yaml:"literal_engine" toml:"literal_engine"`
	MinLiteralLen   int   `yaml:"min_literal_len" toml:"min_literal_len"`
	MaxLiterals     int   `yaml:"max_literals" toml:"max_literals"`
	MaxNestingDepth int   `yaml:"max_nesting_depth" toml:"max_nesting_depth"`
}

// Default returns the settings used when no file is found.
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load reads the settings file at path.
func Load(path string) (*Settings, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := decodeYAML(path, &s); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &s, nil
}

// Resolve finds and loads the settings file. The explicit path wins, then
// the path in EnvVar, then DefaultFile in the working directory. Without any
// of them the defaults are returned. The second result is the file that was
// loaded, or "" for defaults.
func Resolve(explicit string) (*Settings, string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path == "" {
		return Default(), "", nil
	}

	s, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return s, path, nil
}

func decodeYAML(path string, s *Settings) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyDefaults sets default values for missing settings.
func (s *Settings) applyDefaults() {
	if s.Color == "" {
		s.Color = ColorAuto
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}
}

// Validate checks the settings.
func (s *Settings) Validate() error {
	switch s.Color {
	case ColorNever, ColorAlways, ColorAuto:
	default:
		return fmt.Errorf("color: unknown mode %q", s.Color)
	}

	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", s.LogLevel)
	}

	return s.EngineConfig().Validate()
}

// EngineConfig returns the engine configuration with the overrides applied.
func (s *Settings) EngineConfig() meta.Config {
	c := meta.DefaultConfig()
	e := s.Engine
	if e.Prefilter != nil {
		c.EnablePrefilter = *e.Prefilter
	}
	if e.LiteralEngine != nil {
		c.EnableLiteralEngine = *e.LiteralEngine
	}
	if e.MinLiteralLen != 0 {
		c.MinLiteralLen = e.MinLiteralLen
	}
	if e.MaxLiterals != 0 {
		c.MaxLiterals = e.MaxLiterals
	}
	if e.MaxNestingDepth != 0 {
		c.MaxNestingDepth = e.MaxNestingDepth
	}
	return c
}
