package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

//go:embed config.example.yaml
var embeddedConfigSample string

// Loader handles configuration loading and saving
type Loader struct {
	// Config file paths in priority order
	searchPaths []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: getDefaultSearchPaths(),
	}
}

// Load loads configuration from file and environment variables.
// Fields missing from the file keep their default values.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	configPath := l.FindConfigPath(explicitPath)
	if configPath != "" {
		if err := l.loadFromFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	}

	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file
func (l *Loader) Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfigPath returns explicitPath if set, otherwise the first search
// path that exists, otherwise "".
func (l *Loader) FindConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	for _, path := range l.searchPaths {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// GetConfigPath returns the path where config would be loaded from
func (l *Loader) GetConfigPath(explicitPath string) string {
	if path := l.FindConfigPath(explicitPath); path != "" {
		return path
	}
	return DefaultConfigPath()
}

// DefaultConfigPath is the per-user config location
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "hello", "config.yaml")
}

// loadFromFile decodes YAML from path over cfg
func (l *Loader) loadFromFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// getDefaultSearchPaths returns the default configuration search paths
func getDefaultSearchPaths() []string {
	paths := []string{}

	if envPath := os.Getenv("HELLO_CONFIG_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}

	// Current directory - prioritized over the user directory
	paths = append(paths, "config.yaml")

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "hello", "config.yaml"))
	}

	return paths
}

// applyEnvironmentOverrides applies environment variable overrides to config
func applyEnvironmentOverrides(cfg *Config) {
	if logLevel := os.Getenv("HELLO_LOG_LEVEL"); logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat := os.Getenv("HELLO_LOG_FORMAT"); logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if logOutput := os.Getenv("HELLO_LOG_OUTPUT"); logOutput != "" {
		cfg.Logging.Output = logOutput
	}
	if timestamp := os.Getenv("HELLO_LOG_TIMESTAMP"); timestamp != "" {
		// Unparseable values leave the setting alone
		if enabled, err := cast.ToBoolE(strings.TrimSpace(timestamp)); err == nil {
			cfg.Logging.Timestamp = enabled
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Logging.Color = false
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CreateSampleConfig writes the commented sample configuration to path.
// An existing file is left untouched unless force is set.
func CreateSampleConfig(path string, force bool) error {
	if fileExists(path) && !force {
		return fmt.Errorf("config file already exists: %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(embeddedConfigSample), 0644); err != nil {
		return fmt.Errorf("failed to write sample config: %w", err)
	}

	return nil
}
