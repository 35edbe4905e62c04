package main

import (
	"os"
	"path/filepath"
	"testing"

	"pomodoro_tui/internal"
	"pomodoro_tui/internal/config"
	"pomodoro_tui/internal/ticker"
)

var _ internal.Scheduler = (*ticker.Ticker)(nil)

func TestRun_InvalidConfigReturnsExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("alert:\n  volume: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POMODORO_CONFIG", path)

	if code := run(); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestAlertSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Alert.Volume = -2
	cfg.Alert.Muted = true

	got := alertSettings(cfg)
	if got.Volume != -2 || !got.Muted {
		t.Errorf("unexpected settings %+v", got)
	}
}
