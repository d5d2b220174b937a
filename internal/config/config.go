// Package config handles configuration for the arbitime CLI, loaded
// from configuration files, environment variables, and command-line
// flags.
package config

import (
	"fmt"
	"strings"
)

// Config represents the complete configuration for the arbitime CLI.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Run command settings
	Label string `mapstructure:"label" yaml:"label" json:"label"`
	Runs  int    `mapstructure:"runs" yaml:"runs" json:"runs"`
	Table bool   `mapstructure:"table" yaml:"table" json:"table"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Label:    "",
		Runs:     1,
		Table:    false,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.Runs < 1 {
		return fmt.Errorf("invalid runs: %d (must be positive)", c.Runs)
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
