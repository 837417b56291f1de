// Package greeter logs the startup greeting and provides integer addition.
package greeter

import "github.com/charmbracelet/log"

// Message is the fixed greeting written on startup.
const Message = "Hello, SonarQube!"

// Greeter owns the logger the greeting is written to.
type Greeter struct {
	logger *log.Logger
}

// New creates a Greeter. A nil logger falls back to the charmbracelet
// default logger.
func New(logger *log.Logger) *Greeter {
	if logger == nil {
		logger = log.Default()
	}
	return &Greeter{logger: logger}
}

// Greet writes Message once at info level.
func (g *Greeter) Greet() {
	g.logger.Info(Message)
}

// Add is the method form of Add.
func (g *Greeter) Add(a, b int) int {
	return Add(a, b)
}
