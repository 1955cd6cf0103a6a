package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New creates a text logger writing to w. The "error" key is written as
// "err" so entries line up with the diagnostics view.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns the logger for a session. When debug is off, or no path is
// configured, logging is disabled and the returned closer does nothing.
// The terminal belongs to the presentation, so log output only ever goes
// to a file.
func Open(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if !debug || path == "" {
		return NewNop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, slog.LevelDebug), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
