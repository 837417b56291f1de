package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.Timestamp = false
	cfg.Color = false
	return cfg
}

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, plainConfig())

	logger.Info("test message")

	logOutput := buf.String()
	assert.Contains(t, logOutput, "test message")
	assert.Contains(t, logOutput, "INFO")
	assert.NotContains(t, logOutput, "\033[")
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, plainConfig())

	logger.Info("test message", "user_id", 123, "action", "test")

	logOutput := buf.String()
	assert.Contains(t, logOutput, "user_id=123")
	assert.Contains(t, logOutput, "action=test")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	cfg.Level = "warn"
	logger := NewWithWriter(&buf, cfg)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	logOutput := buf.String()
	assert.NotContains(t, logOutput, "debug message")
	assert.NotContains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "warn message")
}

func TestLogger_Prefix(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	cfg.Prefix = "hello"
	logger := NewWithWriter(&buf, cfg)

	logger.Info("test message")

	assert.Contains(t, buf.String(), "hello")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	cfg.Format = FormatJSON
	logger := NewWithWriter(&buf, cfg)

	logger.Info("test message", "user_id", 123)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(123), entry["user_id"])
}

func TestLogfmtOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	cfg.Format = FormatLogfmt
	logger := NewWithWriter(&buf, cfg)

	logger.Info("test message")

	logOutput := buf.String()
	assert.Contains(t, logOutput, "level=info")
	assert.Contains(t, logOutput, `msg="test message"`)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := plainConfig()
	cfg.Output = path

	logger, closer, err := New(cfg)
	require.NoError(t, err)

	logger.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_StandardStreams(t *testing.T) {
	for _, output := range []string{OutputStderr, OutputStdout, "STDERR"} {
		cfg := plainConfig()
		cfg.Output = output

		logger, closer, err := New(cfg)
		require.NoError(t, err, output)
		assert.NotNil(t, logger)
		assert.NoError(t, closer.Close())
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Level = "verbose"
		_, _, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("format", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Format = "xml"
		_, _, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})

	t.Run("unwritable output", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		cfg := plainConfig()
		cfg.Output = filepath.Join(blocker, "app.log")
		_, _, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open log output")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
		hasError bool
	}{
		{"debug", log.DebugLevel, false},
		{"DEBUG", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"INFO", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"fatal", log.FatalLevel, false},
		{"", log.InfoLevel, true},
		{"invalid", log.InfoLevel, true},
	}

	for _, test := range tests {
		level, err := ParseLevel(test.input)
		if test.hasError {
			assert.Error(t, err, test.input)
			continue
		}
		assert.NoError(t, err, test.input)
		assert.Equal(t, test.expected, level, test.input)
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, DevelopmentConfig().Validate())

	cfg := DefaultConfig()
	cfg.Output = "  "
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Format = "yaml"
	assert.Error(t, cfg.Validate())
}

func TestLoggerConcurrency(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, plainConfig())

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			logger.Info("concurrent message", "goroutine", id)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Contains(t, line, "concurrent message")
	}
}
