package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("expected default backend %q, got %q", BackendFile, cfg.Storage.Backend)
	}
	if cfg.Timing.NavClose != 3*time.Second {
		t.Errorf("expected nav close 3s, got %v", cfg.Timing.NavClose)
	}
	if cfg.Timing.IntroTick != 200*time.Millisecond {
		t.Errorf("expected intro tick 200ms, got %v", cfg.Timing.IntroTick)
	}
	if cfg.Timing.IntroHold != 500*time.Millisecond {
		t.Errorf("expected intro hold 500ms, got %v", cfg.Timing.IntroHold)
	}
	if cfg.Timing.PhotoInterval != 4*time.Second || cfg.Timing.CarouselInterval != 2*time.Second {
		t.Errorf("unexpected rotator intervals %v / %v", cfg.Timing.PhotoInterval, cfg.Timing.CarouselInterval)
	}
	if cfg.Intro.MaxStep != 15 {
		t.Errorf("expected max step 15, got %d", cfg.Intro.MaxStep)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnvVar, home)

	cfg, err := Load(filepath.Join(home, "nope.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage.Path != filepath.Join(home, "state.json") {
		t.Errorf("storage path: got %q", cfg.Storage.Path)
	}
	if cfg.Log.Path != filepath.Join(home, "debug.log") {
		t.Errorf("log path: got %q", cfg.Log.Path)
	}
	if cfg.Session.Dir == "" {
		t.Errorf("session dir should be resolved")
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnvVar, home)

	path := filepath.Join(home, "config.yml")
	body := `
storage:
  backend: bolt
timing:
  nav_close: 1500ms
  carousel_interval: 3s
intro:
  max_step: 5
ui:
  nerd_fonts: "off"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_INTRO__MAX_STEP", "9")
	t.Setenv("FOLIO_SESSION__ID", "pinned")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage.Backend != BackendBolt {
		t.Errorf("backend: got %q, want bolt", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != filepath.Join(home, "state.db") {
		t.Errorf("bolt path: got %q", cfg.Storage.Path)
	}
	if cfg.Timing.NavClose != 1500*time.Millisecond {
		t.Errorf("nav close: got %v", cfg.Timing.NavClose)
	}
	if cfg.Timing.CarouselInterval != 3*time.Second {
		t.Errorf("carousel interval: got %v", cfg.Timing.CarouselInterval)
	}
	if cfg.Timing.IntroTick != 200*time.Millisecond {
		t.Errorf("unset durations keep defaults, got %v", cfg.Timing.IntroTick)
	}
	if cfg.Intro.MaxStep != 9 {
		t.Errorf("env should win over file: max step %d", cfg.Intro.MaxStep)
	}
	if cfg.Session.ID != "pinned" {
		t.Errorf("session id: got %q", cfg.Session.ID)
	}
	if cfg.UI.NerdFonts != NerdFontsOff {
		t.Errorf("nerd fonts: got %q", cfg.UI.NerdFonts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"bad nerd font mode", func(c *Config) { c.UI.NerdFonts = "maybe" }, "ui.nerd_fonts"},
		{"zero nav close", func(c *Config) { c.Timing.NavClose = 0 }, "timing.nav_close"},
		{"negative carousel", func(c *Config) { c.Timing.CarouselInterval = -time.Second }, "timing.carousel_interval"},
		{"zero max step", func(c *Config) { c.Intro.MaxStep = 0 }, "intro.max_step"},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
