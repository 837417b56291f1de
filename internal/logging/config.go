package logging

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Output targets that are not file paths
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// Supported formats
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Config holds logging configuration
type Config struct {
	Level     string `yaml:"level" json:"level"`
	Format    string `yaml:"format" json:"format"`       // text, json or logfmt
	Output    string `yaml:"output" json:"output"`       // stderr, stdout or a file path
	Timestamp bool   `yaml:"timestamp" json:"timestamp"` // whether to include timestamps
	Caller    bool   `yaml:"caller" json:"caller"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Color     bool   `yaml:"color" json:"color"`
}

// DefaultConfig returns a default logging configuration
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    FormatText,
		Output:    OutputStderr,
		Timestamp: true,
		Caller:    false,
		Color:     true,
	}
}

// DevelopmentConfig returns a configuration suitable for development
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.Level = "debug"
	config.Caller = true
	return config
}

// Validate checks that level, format and output are usable
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return err
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("log output is required")
	}
	return nil
}

// ParseLevel parses a string log level
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return log.WarnLevel, nil
	case "":
		return log.InfoLevel, fmt.Errorf("log level is required")
	}
	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
	return l, nil
}

// ParseFormat maps a format name to a charmbracelet formatter
func ParseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format: %s", format)
	}
}
