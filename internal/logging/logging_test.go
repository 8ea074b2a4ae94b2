package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "slither")
	l.Info("level up", "level", 2)

	out := buf.String()
	if !strings.Contains(out, "slither") {
		t.Errorf("output %q missing prefix", out)
	}
	if !strings.Contains(out, "level=2") {
		t.Errorf("output %q missing key/value", out)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	l, c, err := OpenFile("", "slither", "")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer c.Close()
	l.Error("dropped")
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "slither.log")

	l, c, err := OpenFile(path, "slither", "debug")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", l.GetLevel())
	}
	l.Debug("first")
	c.Close()

	l, c, err = OpenFile(path, "slither", "")
	if err != nil {
		t.Fatalf("OpenFile() reopen error = %v", err)
	}
	l.Info("second")
	c.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file = %q, expected both entries", data)
	}
}

func TestOpenFileBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slither.log")
	if _, _, err := OpenFile(path, "slither", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
