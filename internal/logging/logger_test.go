package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Error("boom", "error", errors.New("bad"))
	out := buf.String()
	if !strings.Contains(out, "err=bad") {
		t.Fatalf("output %q missing err=bad", out)
	}
	if strings.Contains(out, "error=") {
		t.Fatalf("output %q still has error key", out)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug entry written at info level: %q", buf.String())
	}
}

func TestOpen_DisabledWithoutDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brevity.log")
	logger, closer, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info("nothing")
	_ = closer.Close()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("log file created without debug: %v", err)
	}
}

func TestOpen_WritesFileWithDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "brevity.log")
	logger, closer, err := Open(path, true)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Debug("navigation at boundary", "direction", "down")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "direction=down") {
		t.Fatalf("log %q missing entry", data)
	}
}
