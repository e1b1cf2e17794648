// Package logger provides the diagnostic logger ggrep writes to stderr.
//
// Search results go to stdout through the controller; everything else
// (unreadable files, skipped entries) goes through a ConsoleLogger so it
// never interleaves with machine-readable output.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Log level constants for filtering
const (
	levelDebug int = iota
	levelWarn
	levelError
)

// Logger is the logging surface used by the domain layer.
type Logger interface {
	LogDebug(format string, args ...interface{})
	LogWarn(format string, args ...interface{})
	LogError(format string, args ...interface{})
}

// ConsoleLogger writes "<prog>: <level>: <message>" lines to a writer.
// Level tags are styled with lipgloss; the renderer is bound to the
// writer so redirected output stays plain.
type ConsoleLogger struct {
	writer   io.Writer
	prog     string
	logLevel string
	mutex    sync.Mutex
	styles   map[string]lipgloss.Style
}

// NewConsoleLogger creates a ConsoleLogger writing to writer.
// If writer is nil, messages are silently discarded.
// Valid levels: debug, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "warn".
func NewConsoleLogger(writer io.Writer, prog, logLevel string) *ConsoleLogger {
	cl := &ConsoleLogger{
		writer:   writer,
		prog:     prog,
		logLevel: normalizeLogLevel(logLevel),
	}

	if writer != nil {
		renderer := lipgloss.NewRenderer(writer)
		cl.styles = map[string]lipgloss.Style{
			"debug": renderer.NewStyle().Foreground(lipgloss.Color("6")),
			"warn":  renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
			"error": renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		}
	}

	return cl
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	if _, ok := levelValues[normalized]; ok {
		return normalized
	}

	return "warn"
}

var levelValues = map[string]int{
	"debug": levelDebug,
	"warn":  levelWarn,
	"error": levelError,
}

// SetLevel changes the minimum level; invalid values reset it to "warn".
func (cl *ConsoleLogger) SetLevel(level string) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	cl.logLevel = normalizeLogLevel(level)
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return levelValues[messageLevel] >= levelValues[cl.logLevel]
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(format string, args ...interface{}) {
	cl.logWithLevel("debug", format, args...)
}

// LogWarn logs a warning.
func (cl *ConsoleLogger) LogWarn(format string, args ...interface{}) {
	cl.logWithLevel("warn", format, args...)
}

// LogError logs an error.
func (cl *ConsoleLogger) LogError(format string, args ...interface{}) {
	cl.logWithLevel("error", format, args...)
}

func (cl *ConsoleLogger) logWithLevel(level, format string, args ...interface{}) {
	if cl.writer == nil {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if !cl.shouldLog(level) {
		return
	}

	tag := level
	if style, ok := cl.styles[level]; ok {
		tag = style.Render(level)
	}

	message := fmt.Sprintf(format, args...)

	if cl.prog != "" {
		_, _ = fmt.Fprintf(cl.writer, "%s: %s: %s\n", cl.prog, tag, message)
		return
	}

	_, _ = fmt.Fprintf(cl.writer, "%s: %s\n", tag, message)
}

// NopLogger discards everything.
type NopLogger struct{}

// LogDebug implements Logger.
func (NopLogger) LogDebug(string, ...interface{}) {}

// LogWarn implements Logger.
func (NopLogger) LogWarn(string, ...interface{}) {}

// LogError implements Logger.
func (NopLogger) LogError(string, ...interface{}) {}
