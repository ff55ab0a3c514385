// Package icons provides consistent icon representations using Nerd Fonts
// for the skills, projects and contact cards of the page.
package icons

import (
	"os"
	"strings"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

// Icons named in the content document
var (
	Circle    = Icon{NerdFont: "\uf111", Fallback: "●"}
	Database  = Icon{NerdFont: "\uf1c0", Fallback: "▤"}
	Cup       = Icon{NerdFont: "\uf0f4", Fallback: "☕"}
	Brush     = Icon{NerdFont: "\uf1fc", Fallback: "✎"}
	Box       = Icon{NerdFont: "\uf466", Fallback: "▣"}
	Clipboard = Icon{NerdFont: "\uf0ea", Fallback: "✚"}
	Book      = Icon{NerdFont: "\uf02d", Fallback: "▥"}
	Ballot    = Icon{NerdFont: "\uf46d", Fallback: "☑"}
	Recycle   = Icon{NerdFont: "\uf1b8", Fallback: "♻"}
	Eye       = Icon{NerdFont: "\uf06e", Fallback: "◉"}
	Github    = Icon{NerdFont: "\uf09b", Fallback: "GH"}
	Facebook  = Icon{NerdFont: "\uf09a", Fallback: "FB"}

	// Contact cards
	Envelope  = Icon{NerdFont: "\uf0e0", Fallback: "✉"}
	Telephone = Icon{NerdFont: "\uf095", Fallback: "☎"}
	Person    = Icon{NerdFont: "\uf2bd", Fallback: "☺"}

	// Project links
	Link = Icon{NerdFont: "\uf0c1", Fallback: "↗"}
	Code = Icon{NerdFont: "\uf121", Fallback: "<>"}

	// Navigation trigger
	Menu = Icon{NerdFont: "\uf142", Fallback: "⋮"}
)

var byName = map[string]Icon{
	"circle":    Circle,
	"database":  Database,
	"cup":       Cup,
	"brush":     Brush,
	"box":       Box,
	"clipboard": Clipboard,
	"book":      Book,
	"ballot":    Ballot,
	"recycle":   Recycle,
	"eye":       Eye,
	"github":    Github,
	"facebook":  Facebook,
	"envelope":  Envelope,
	"telephone": Telephone,
	"person":    Person,
}

var useNerdFonts *bool

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	// Check common environment variables that indicate Nerd Font usage
	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
		"tmux-256color", "xterm-256color", "xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	// Cache the result
	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// ResetDetection forgets a manual override so the environment is probed again
func ResetDetection() {
	useNerdFonts = nil
}

// Lookup returns the icon registered under name
func Lookup(name string) (Icon, bool) {
	icon, ok := byName[strings.ToLower(name)]
	return icon, ok
}

// ByName returns the icon string for name, or the circle icon for unknown names
func ByName(name string) string {
	if icon, ok := Lookup(name); ok {
		return icon.Get()
	}
	return Circle.Get()
}
