package config

import "time"

// StorageBackend selects the durable key-value store implementation.
type StorageBackend string

const (
	BackendFile   StorageBackend = "file"
	BackendBolt   StorageBackend = "bolt"
	BackendSQLite StorageBackend = "sqlite"
)

// NerdFontMode controls icon selection.
type NerdFontMode string

const (
	NerdFontsAuto NerdFontMode = "auto"
	NerdFontsOn   NerdFontMode = "on"
	NerdFontsOff  NerdFontMode = "off"
)

// Config is the top-level folio configuration, corresponding to config.yml.
type Config struct {
	Storage StorageConfig `yaml:"storage" koanf:"storage"`
	Session SessionConfig `yaml:"session" koanf:"session"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	UI      UIConfig      `yaml:"ui" koanf:"ui"`
	Timing  TimingConfig  `yaml:"timing" koanf:"timing"`
	Intro   IntroConfig   `yaml:"intro" koanf:"intro"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// StorageConfig locates the durable store holding the theme preference.
type StorageConfig struct {
	Backend StorageBackend `yaml:"backend" koanf:"backend"`
	Path    string         `yaml:"path" koanf:"path"`
}

// SessionConfig locates session-scoped storage.
type SessionConfig struct {
	Dir string `yaml:"dir" koanf:"dir"`
	// ID pins the session identifier; empty means the terminal session.
	ID string `yaml:"id" koanf:"id"`
}

// ContentConfig points at an alternate content file.
type ContentConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// UIConfig holds rendering switches.
type UIConfig struct {
	NerdFonts NerdFontMode `yaml:"nerd_fonts" koanf:"nerd_fonts"`
	NoColor   bool         `yaml:"no_color" koanf:"no_color"`
}

// TimingConfig holds every delay and interval used by the page controllers.
type TimingConfig struct {
	NavClose         time.Duration `yaml:"nav_close" koanf:"nav_close"`
	IntroTick        time.Duration `yaml:"intro_tick" koanf:"intro_tick"`
	IntroHold        time.Duration `yaml:"intro_hold" koanf:"intro_hold"`
	PhotoInterval    time.Duration `yaml:"photo_interval" koanf:"photo_interval"`
	CarouselInterval time.Duration `yaml:"carousel_interval" koanf:"carousel_interval"`
}

// IntroConfig tunes the loading intro.
type IntroConfig struct {
	// MaxStep bounds the random progress increment per tick.
	MaxStep int `yaml:"max_step" koanf:"max_step"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	Path  string `yaml:"path" koanf:"path"`
}
