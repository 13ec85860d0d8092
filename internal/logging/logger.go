// Package logging provides the leveled logger used by the command-line tools.
package logging

import (
	"io"
	"log"
	"strings"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a case-insensitive level name. Unknown names map to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is the leveled logging contract injected into runners.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// StdLogger writes "[LEVEL] message" lines through a stdlib log.Logger.
type StdLogger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to out at the given minimum level.
func New(level string, out io.Writer) *StdLogger {
	return &StdLogger{level: ParseLevel(level), out: log.New(out, "", log.LstdFlags)}
}

func (l *StdLogger) logf(level Level, tag, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, v ...any) { l.logf(LevelDebug, "DEBUG", format, v...) }

// Infof logs an info message.
func (l *StdLogger) Infof(format string, v ...any) { l.logf(LevelInfo, "INFO", format, v...) }

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, v ...any) { l.logf(LevelWarn, "WARN", format, v...) }

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, v ...any) { l.logf(LevelError, "ERROR", format, v...) }

// NoOp discards everything.
type NoOp struct{}

func (NoOp) Debugf(string, ...any) {}
func (NoOp) Infof(string, ...any)  {}
func (NoOp) Warnf(string, ...any)  {}
func (NoOp) Errorf(string, ...any) {}

// NewNoOp returns a logger that drops all output.
func NewNoOp() Logger { return NoOp{} }
