package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bindery/internal/classify"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`library_dir = "` + filepath.Join(base, "library") + `"`,
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
		`data_dir = "` + filepath.Join(base, "data") + `"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestResolveModeFlags(t *testing.T) {
	var out bytes.Buffer

	mode, err := resolveMode(strings.NewReader(""), &out, true, false)
	if err != nil || mode != classify.ModeAutomated {
		t.Fatalf("auto flag: mode=%v err=%v", mode, err)
	}

	mode, err = resolveMode(strings.NewReader(""), &out, false, true)
	if err != nil || mode != classify.ModeInteractive {
		t.Fatalf("interactive flag: mode=%v err=%v", mode, err)
	}

	if _, err := resolveMode(strings.NewReader(""), &out, true, true); err == nil {
		t.Fatal("both flags must be rejected")
	}
}

func TestResolveModeMenu(t *testing.T) {
	var out bytes.Buffer

	mode, err := resolveMode(strings.NewReader("2\n"), &out, false, false)
	if err != nil || mode != classify.ModeInteractive {
		t.Fatalf("menu choice 2: mode=%v err=%v", mode, err)
	}

	// Invalid input re-prompts until a valid choice arrives.
	mode, err = resolveMode(strings.NewReader("x\n\n1\n"), &out, false, false)
	if err != nil || mode != classify.ModeAutomated {
		t.Fatalf("menu retry: mode=%v err=%v", mode, err)
	}

	if _, err := resolveMode(strings.NewReader("q\n"), &out, false, false); err != errQuit {
		t.Fatalf("quit choice should return errQuit, got %v", err)
	}

	if !strings.Contains(out.String(), "Choose operating mode") {
		t.Fatal("menu text missing")
	}
}

func TestStatusCommandWithoutProgress(t *testing.T) {
	cfgPath := writeTestConfig(t)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "status"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out.String(), "No progress recorded yet") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// A second init without --overwrite refuses to clobber the file.
	cmd = newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}

	cmd = newRootCommand()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", target, "config", "show"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out.String(), "[ollama]") || !strings.Contains(out.String(), "gemma3:12b") {
		t.Fatalf("show output missing resolved values:\n%s", out.String())
	}
}
