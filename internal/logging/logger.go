// Package logging builds the application logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// New creates a logger from config. The returned closer releases the
// underlying sink and must be called once logging is finished.
func New(config Config) (*log.Logger, io.Closer, error) {
	if _, err := ParseLevel(config.Level); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}
	if _, err := ParseFormat(config.Format); err != nil {
		return nil, nil, fmt.Errorf("invalid log format %q: %w", config.Format, err)
	}

	writer, closer, err := openOutput(config.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output %q: %w", config.Output, err)
	}

	return NewWithWriter(writer, config), closer, nil
}

// NewWithWriter creates a logger writing to w. Level and formatter fall
// back to their defaults if config holds values that do not parse.
func NewWithWriter(w io.Writer, config Config) *log.Logger {
	level, _ := ParseLevel(config.Level)
	formatter, _ := ParseFormat(config.Format)

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: config.Timestamp,
		ReportCaller:    config.Caller,
		Prefix:          config.Prefix,
	})

	if !config.Color {
		logger.SetColorProfile(termenv.Ascii)
	}
	logger.SetStyles(levelStyles())

	return logger
}

// levelStyles pads level labels so messages line up in text output
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("63"))
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Foreground(lipgloss.Color("86"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Foreground(lipgloss.Color("192"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("204"))
	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Foreground(lipgloss.Color("134"))
	return styles
}

// nopCloser keeps the process standard streams open
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openOutput resolves the configured target to a writer
func openOutput(target string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case OutputStderr, "":
		return os.Stderr, nopCloser{}, nil
	case OutputStdout:
		return os.Stdout, nopCloser{}, nil
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
