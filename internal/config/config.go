// Package config loads settings for the vorbismeta tool.
//
// Files may be YAML or JSON; both are decoded through the JSON field tags.
package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/thesyncim/govorbis/comment"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the tool settings.
type Config struct {
	// Vendor is written into comment headers built by the tool.
	Vendor string `json:"vendor"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"log_level"`

	// LogFormat is text or json.
	LogFormat string `json:"log_format"`

	// Tags are "TAG=value" strings written into every comment header the
	// tool builds, ahead of the tags given on the command line.
	Tags []string `json:"tags,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Vendor:    comment.DefaultVendor,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path over the defaults. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
