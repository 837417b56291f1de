package config

import (
	"fmt"

	"github.com/common-creation/hello/internal/logging"
)

// Config represents the complete configuration for hello
type Config struct {
	// Logging configuration
	Logging logging.Config `yaml:"logging" json:"logging"`
}

// NewDefaultConfig creates a new configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging configuration error: %w", err)
	}
	return nil
}
