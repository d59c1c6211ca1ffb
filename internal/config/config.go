// Package config loads the ordermap CLI settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDump = "dump"
)

const (
	defaultLevel  = "info"
	defaultIndent = 2
)

// Config is the top-level CLI configuration.
type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// Output controls how assembled orders are printed.
type Output struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// Parse parses a YAML config document and applies defaults.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Validate reports the first unsupported setting.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatDump:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	if c.Output.Indent < 0 {
		return fmt.Errorf("output indent must not be negative, got %d", c.Output.Indent)
	}

	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", s, err)
	}

	return level, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Log.Level == "" {
		c.Log.Level = defaultLevel
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatJSON
	}

	if c.Output.Indent == 0 {
		c.Output.Indent = defaultIndent
	}
}
