package config

import (
	"fmt"
	"os"
)

// LoggerConfig configures logging behavior.
//
// Priority order (highest to lowest): CLI flags, environment variables
// (LOG_LEVEL, LOG_FILE, LOG_FORMAT), config file, defaults.
type LoggerConfig struct {
	// Level specifies the log level (debug, info, warn, error).
	Level string `yaml:"level,omitempty"`

	// File specifies the log file path. Empty means stderr.
	File string `yaml:"file,omitempty"`

	// Format is "simple" (level + message) or "verbose" (adds timestamps).
	Format string `yaml:"format,omitempty"`
}

// SetDefaults applies default values.
func (c *LoggerConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "simple"
	}
}

// FromEnvironment overlays the LOG_LEVEL, LOG_FILE, and LOG_FORMAT
// environment variables onto the section. Set variables win over the
// config file; CLI flags are merged above both by the caller.
func (c *LoggerConfig) FromEnvironment() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.File = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Format = v
	}
}

// Validate checks the logger configuration.
func (c *LoggerConfig) Validate() error {
	if c.Level != "" {
		validLevels := map[string]bool{
			"debug":   true,
			"info":    true,
			"warn":    true,
			"warning": true,
			"error":   true,
		}
		if !validLevels[c.Level] {
			return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", c.Level)
		}
	}
	return nil
}
