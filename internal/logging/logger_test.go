package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithLogDirAppends(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewWithLogDir(dir, "info", "console")
	if err != nil {
		t.Fatalf("NewWithLogDir: %v", err)
	}
	logger.Info("first run", String("mode", "automated"))

	logger2, err := NewWithLogDir(dir, "info", "console")
	if err != nil {
		t.Fatalf("NewWithLogDir reopen: %v", err)
	}
	logger2.Info("second run")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "first run") || !strings.Contains(content, "second run") {
		t.Fatalf("log file should accumulate across runs, got:\n%s", content)
	}
	if !strings.Contains(content, "mode=automated") {
		t.Fatalf("expected structured attr in output, got:\n%s", content)
	}
	if !strings.Contains(content, "INFO") {
		t.Fatalf("expected severity tag in output, got:\n%s", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if got := parseLevel("nonsense"); got != parseLevel("info") {
		t.Fatalf("unknown level should default to info, got %v", got)
	}
}
