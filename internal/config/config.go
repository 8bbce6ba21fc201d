// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. ADDER_FORMAT.
const Prefix = "ADDER"

// Config holds CLI defaults. Command-line flags override every field.
type Config struct {
	Format string    `envconfig:"FORMAT" default:"text"`
	DB     string    `envconfig:"DB"`
	Log    LogConfig `envconfig:"LOG"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load reads configuration from ADDER_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration or falls back to Default on error.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: "text",
		Log: LogConfig{
			Level: "info",
		},
	}
}
