package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
buttons:
  - label: "OK"
    x: 10
    y: 10
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600 defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Buttons[0].Width != 120 || cfg.Buttons[0].Height != 40 {
		t.Errorf("button size = %vx%v, want defaults", cfg.Buttons[0].Width, cfg.Buttons[0].Height)
	}
	if got := cfg.Buttons[0].duration(); got != 300*time.Millisecond {
		t.Errorf("duration = %v, want default", got)
	}
}

func TestLoadConfigRejectsBadEasing(t *testing.T) {
	path := writeConfig(t, `
buttons:
  - label: "bad"
    easing: wobble_out
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("bad easing accepted")
	}
}

func TestLoadConfigRejectsBadColor(t *testing.T) {
	path := writeConfig(t, `
buttons:
  - label: "bad"
    normal_color: "notacolor"
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("bad color accepted")
	}
}

func TestLoadConfigRejectsUnknownEffect(t *testing.T) {
	path := writeConfig(t, `
buttons:
  - label: "bad"
    effect: explode
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("unknown effect accepted")
	}
}
