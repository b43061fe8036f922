// Package logging is the process-wide diagnostic logger. User-facing output
// goes to stdout through the printers; this logger writes to stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func init() {
	level.Set(slog.LevelWarn)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return logger
}

// With returns the shared logger with additional fields.
func With(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// SetOutput redirects the shared logger, mostly for tests.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// SetLevel sets the minimum level from a name such as "debug" or "warn".
// Unknown names leave the level unchanged.
func SetLevel(name string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return
	}
	level.Set(l)
}
