// Package logging wraps charmbracelet/log with the game's diagnostic error
// counter.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Kind selects the kind of entry written by Log.
type Kind int

const (
	KindInfo Kind = iota
	KindError
)

// Logger is a structured logger that counts error entries.
// The count is diagnostic only and never drives control flow.
type Logger struct {
	*log.Logger
	errors atomic.Int64
}

// New creates a logger writing to w with the given prefix.
func New(w io.Writer, prefix string) *Logger {
	return &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Prefix:          prefix,
		}),
	}
}

// Discard returns a logger that drops everything but still counts errors.
func Discard() *Logger {
	return New(io.Discard, "")
}

// OpenFile creates a logger appending to the file at path, creating parent
// directories as needed. The returned closer releases the file.
func OpenFile(path, prefix string) (*Logger, io.Closer, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return New(f, prefix), f, nil
}

// SetLevelString sets the level from a name such as "debug" or "warn".
func (l *Logger) SetLevelString(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLevel(lvl)
	return nil
}

// Log writes an entry of the given kind. Unknown kinds are recorded as an
// error entry.
func (l *Logger) Log(kind Kind, msg string, keyvals ...any) {
	switch kind {
	case KindInfo:
		l.Info(msg, keyvals...)
	case KindError:
		l.Error(msg, keyvals...)
	default:
		l.Logger.Error("unknown log type", append([]any{"kind", int(kind), "msg", msg}, keyvals...)...)
		l.errors.Add(1)
	}
}

// Error writes an error entry and bumps the error counter.
func (l *Logger) Error(msg any, keyvals ...any) {
	l.Logger.Error(msg, keyvals...)
	l.errors.Add(1)
}

// ErrorCount returns the number of error entries written so far.
func (l *Logger) ErrorCount() int {
	return int(l.errors.Load())
}
