package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// Context is what the footer advertises shortcuts for
type Context int

const (
	ContextPage Context = iota
	ContextNav
	ContextCard
	ContextContact
	ContextIntro
)

// ShortcutOverlay manages the display of contextual shortcuts
type ShortcutOverlay struct {
	keyMap  *GlobalKeyMap
	context Context
}

// NewShortcutOverlay creates a new shortcut overlay
func NewShortcutOverlay(keyMap *GlobalKeyMap) *ShortcutOverlay {
	return &ShortcutOverlay{
		keyMap:  keyMap,
		context: ContextPage,
	}
}

// SetContext updates the current context
func (s *ShortcutOverlay) SetContext(c Context) {
	s.context = c
}

// GetContextualShortcuts returns shortcuts relevant to current context
func (s *ShortcutOverlay) GetContextualShortcuts() []key.Binding {
	// Always show global shortcuts
	shortcuts := []key.Binding{s.keyMap.Quit, s.keyMap.Keybindings}

	switch s.context {
	case ContextIntro:
		return []key.Binding{s.keyMap.Quit}
	case ContextNav:
		shortcuts = append(shortcuts, s.keyMap.CloseNav, s.keyMap.ToggleTheme)
		shortcuts = append(shortcuts, s.keyMap.SectionKeys()...)
	case ContextCard:
		shortcuts = append(shortcuts, s.keyMap.PrevCard, s.keyMap.NextCard, s.keyMap.PrevShot, s.keyMap.NextShot)
	case ContextContact:
		shortcuts = append(shortcuts, s.keyMap.CopyEmail, s.keyMap.CopyPhone, s.keyMap.GitHub, s.keyMap.Facebook)
	default:
		shortcuts = append(shortcuts, s.keyMap.OpenNav, s.keyMap.ToggleTheme, s.keyMap.NextCard)
	}

	return shortcuts
}

// FormatShortcuts formats the shortcuts for display
func (s *ShortcutOverlay) FormatShortcuts() []Shortcut {
	bindings := s.GetContextualShortcuts()
	shortcuts := make([]Shortcut, 0, len(bindings))

	for _, binding := range bindings {
		if binding.Enabled() {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    s.isGlobalKey(binding),
			})
		}
	}

	return shortcuts
}

// isGlobalKey checks if a keybinding is global
func (s *ShortcutOverlay) isGlobalKey(binding key.Binding) bool {
	// Compare by the key help text since we can't compare structs directly
	helpKey := binding.Help().Key
	return helpKey == s.keyMap.Quit.Help().Key || helpKey == s.keyMap.Keybindings.Help().Key
}

// Shortcut represents a keyboard shortcut with its description
type Shortcut struct {
	Key         string
	Description string
	IsGlobal    bool
}

// AllShortcuts returns all available shortcuts for the help dialog
func AllShortcuts(keyMap *GlobalKeyMap) map[string][]Shortcut {
	sections := keyMap.GetHelpSections()
	result := make(map[string][]Shortcut)

	for sectionName, bindings := range sections {
		shortcuts := make([]Shortcut, 0, len(bindings))
		for _, binding := range bindings {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    binding.Help().Key == keyMap.Quit.Help().Key || binding.Help().Key == keyMap.Keybindings.Help().Key,
			})
		}
		result[sectionName] = shortcuts
	}

	return result
}
