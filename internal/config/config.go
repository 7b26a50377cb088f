// Package config loads optional default settings from a YAML file so
// frequent flags do not have to be repeated on every run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults. Flags given on the command line still
// win over anything loaded from here.
type Config struct {
	Units    string `yaml:"units"`
	Timezone string `yaml:"timezone"`
	XAxis    string `yaml:"x"`
	YAxis    string `yaml:"y"`
	Points   int    `yaml:"points"`
}

// DefaultConfig returns the built-in defaults used when no config file
// is given.
func DefaultConfig() Config {
	return Config{
		Units: "metric",
		XAxis: "distance",
		YAxis: "elevation",
	}
}

// Load reads a YAML config file on top of the built-in defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values no pipeline stage would accept.
func (c Config) Validate() error {
	switch c.Units {
	case "metric", "imperial":
	default:
		return fmt.Errorf("config: unknown unit system %q", c.Units)
	}
	if c.Points < 0 {
		return fmt.Errorf("config: points must not be negative, got %d", c.Points)
	}
	return nil
}
