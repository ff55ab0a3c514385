package config

import "time"

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendFile},
		UI:      UIConfig{NerdFonts: NerdFontsAuto},
		Timing: TimingConfig{
			NavClose:         3000 * time.Millisecond,
			IntroTick:        200 * time.Millisecond,
			IntroHold:        500 * time.Millisecond,
			PhotoInterval:    4000 * time.Millisecond,
			CarouselInterval: 2000 * time.Millisecond,
		},
		Intro: IntroConfig{MaxStep: 15},
		Log:   LogConfig{Level: "info"},
	}
}
