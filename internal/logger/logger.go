// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLogLevel names the environment variable consulted when no level flag is given.
const EnvLogLevel = "NB_LOG_LEVEL"

// Logger is the global logger. It writes to stderr without timestamps until
// Configure is called.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets the level and destination of the global logger.
// Level precedence: argument > NB_LOG_LEVEL > info. When file is non-empty,
// output is appended to it and the returned closer releases it.
func Configure(level, file string) (io.Closer, error) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}

	var output io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, err
		}
		output, closer = f, f
	}

	Logger = log.NewWithOptions(output, log.Options{ReportTimestamp: file != ""})
	Logger.SetStyles(styles())
	Logger.SetLevel(ParseLevel(level))
	return closer, nil
}

// SetOutput redirects the global logger, keeping its level. Tests use it to
// capture log lines.
func SetOutput(w io.Writer) {
	level := Logger.GetLevel()
	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(level)
}

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Keys["name"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	s.Values["err"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	return s
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
