package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snake-term/config"
	"snake-term/ui"
	"snake-term/ui/window"
)

func TestOpenLogDiscard(t *testing.T) {
	logger, closeLog, err := openLog("")
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer closeLog()
	logger.Printf("dropped")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, closeLog, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	logger.Printf("hello %d", 42)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello 42") {
		t.Errorf("log = %q, want it to contain %q", data, "hello 42")
	}
}

func TestOpenLogBadPath(t *testing.T) {
	if _, _, err := openLog(filepath.Join(t.TempDir(), "missing", "run.log")); err == nil {
		t.Error("expected error for a log path in a missing directory")
	}
}

func TestNewFrontend(t *testing.T) {
	cfg := config.Default()

	cfg.UI = config.UITerminal
	if _, ok := newFrontend(cfg, nil).(*ui.Terminal); !ok {
		t.Errorf("%s: want *ui.Terminal", cfg.UI)
	}
	cfg.UI = config.UITermbox
	if _, ok := newFrontend(cfg, nil).(*ui.Termbox); !ok {
		t.Errorf("%s: want *ui.Termbox", cfg.UI)
	}
	cfg.UI = config.UIWindow
	if _, ok := newFrontend(cfg, nil).(*window.Window); !ok {
		t.Errorf("%s: want *window.Window", cfg.UI)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	t.Setenv("SNAKE_COLUMNS", "")
	if code := run([]string{"-columns", "0"}); code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
}
