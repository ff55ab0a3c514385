// Package prefs holds the two persisted flags of the page: the theme
// preference in durable storage and the intro visit flag in session storage.
package prefs

import (
	"errors"

	"folio/internal/debug"
	"folio/pkg/storage"

	"go.uber.org/zap"
)

// Theme is the active color scheme
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// ThemeKey is the durable storage key for the theme preference.
const ThemeKey = "theme"

// String returns the stored representation of the theme
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggled returns the other theme
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme maps "dark"/"light" to a Theme. Anything else is not a theme.
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	default:
		return ThemeLight, false
	}
}

// ThemePreference reads and writes the theme in durable storage. The zero
// store reads as light.
type ThemePreference struct {
	store storage.Store
}

// NewThemePreference binds the preference to a store
func NewThemePreference(store storage.Store) *ThemePreference {
	return &ThemePreference{store: store}
}

// Read returns the stored theme, or light when absent or unreadable
func (p *ThemePreference) Read() Theme {
	if p == nil || p.store == nil {
		return ThemeLight
	}
	raw, err := p.store.Get(ThemeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			debug.Log().Debug("theme preference unavailable", zap.Error(err))
		}
		return ThemeLight
	}
	theme, ok := ParseTheme(raw)
	if !ok {
		debug.Log().Debug("ignoring unknown theme", zap.String("value", raw))
	}
	return theme
}

// Write stores the theme. It returns the storage error for callers that
// care; the page itself only logs it.
func (p *ThemePreference) Write(t Theme) error {
	if p == nil || p.store == nil {
		return nil
	}
	if err := p.store.Set(ThemeKey, t.String()); err != nil {
		debug.Log().Warn("failed to save theme preference", zap.String("theme", t.String()), zap.Error(err))
		return err
	}
	return nil
}
