// Package logging builds the charmbracelet/log loggers used across slither.
// The terminal frontend owns stdout, so interactive commands log to a file
// or nowhere; the SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile returns a logger appending to the file at path.
// An empty path yields a discarding logger and a no-op closer.
// The level string is parsed with log.ParseLevel; empty means info.
func OpenFile(path, prefix, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}

	l := New(f, prefix)
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		l.SetLevel(lvl)
	}
	return l, f, nil
}
