package ports

import "strings"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for per-request traces of the capability adapters.
	LevelDebug LogLevel = iota
	// LevelInfo is for command level progress.
	LevelInfo
	// LevelWarn is for recoverable problems, such as an unreadable directory
	// skipped during a search.
	LevelWarn
	// LevelError is for failures that abort the command.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel parses a level name, case-insensitively. Unknown names yield
// LevelInfo.
func ParseLogLevel(s string) LogLevel {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level
		}
	}
	return LevelInfo
}

// Logger abstracts leveled logging. Messages are format keys that the
// implementation may translate before formatting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithComponent returns a Logger that prefixes messages with the component
	// name.
	WithComponent(component string) Logger
}
