// Package logging provides a small leveled logger with an explicit sink.
// There is no package-level default: callers construct a logger and pass it
// down, which keeps simulations independently instantiable and keeps tests
// from sharing hidden state.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is log severity.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return "?"
}

// ParseLevel maps a level name to a Level, defaulting to Info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return Debug
	case "warn", "WARN", "warning":
		return Warn
	case "error", "ERROR":
		return Error
	default:
		return Info
	}
}

// Logger writes timestamped, leveled lines to a single sink.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

// New returns a logger writing to stderr at the given minimum level.
func New(level Level) *Logger {
	return &Logger{level: level, out: os.Stderr}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{level: Error + 1, out: io.Discard}
}

// SetOutput redirects the sink.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.out, "%s [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(Error, format, args...) }
