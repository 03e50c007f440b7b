package mocks

import (
	"fmt"
	"sync"

	"github.com/user/pathkit/pkg/ports"
)

// LogEntry is one captured log message.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger is a mock ports.Logger capturing formatted, untranslated messages.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]LogEntry
	component string
}

// NewLogger creates a mock Logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

// Entries returns all entries captured by this logger and its component
// loggers.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), (*l.entries)...)
}

// Messages returns the captured messages of one level.
func (l *Logger) Messages(level ports.LogLevel) []string {
	var messages []string
	for _, entry := range l.Entries() {
		if entry.Level == level {
			messages = append(messages, entry.Message)
		}
	}
	return messages
}

func (l *Logger) add(level ports.LogLevel, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, LogEntry{
		Level:     level,
		Component: l.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

func (l *Logger) Debug(msg string, args ...any) { l.add(ports.LevelDebug, msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.add(ports.LevelInfo, msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.add(ports.LevelWarn, msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.add(ports.LevelError, msg, args...) }

// WithComponent returns a logger sharing the same entry list.
func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: l.mu, entries: l.entries, component: component}
}

var _ ports.Logger = (*Logger)(nil)
