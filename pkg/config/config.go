package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: FOLIO_STORAGE__BACKEND=bolt sets storage.backend.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays a .env
// file from the working directory and FOLIO_* environment variables.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.ResolvePaths()
	return cfg, nil
}

var validBackends = map[StorageBackend]bool{
	BackendFile:   true,
	BackendBolt:   true,
	BackendSQLite: true,
}

var validNerdFontModes = map[NerdFontMode]bool{
	NerdFontsAuto: true,
	NerdFontsOn:   true,
	NerdFontsOff:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validBackends[c.Storage.Backend] {
		return fmt.Errorf("invalid storage.backend %q: must be one of file, bolt, sqlite", c.Storage.Backend)
	}
	if c.UI.NerdFonts != "" && !validNerdFontModes[c.UI.NerdFonts] {
		return fmt.Errorf("invalid ui.nerd_fonts %q: must be one of auto, on, off", c.UI.NerdFonts)
	}

	durations := []struct {
		name  string
		value int64
	}{
		{"timing.nav_close", int64(c.Timing.NavClose)},
		{"timing.intro_tick", int64(c.Timing.IntroTick)},
		{"timing.intro_hold", int64(c.Timing.IntroHold)},
		{"timing.photo_interval", int64(c.Timing.PhotoInterval)},
		{"timing.carousel_interval", int64(c.Timing.CarouselInterval)},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive", d.name)
		}
	}

	if c.Intro.MaxStep < 1 {
		return fmt.Errorf("intro.max_step must be at least 1")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}

	return nil
}
