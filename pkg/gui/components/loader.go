package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptCursor blinks like a shell prompt waiting for input
var PromptCursor = spinner.Spinner{
	Frames: []string{"▍", " "},
	FPS:    time.Second / 2,
}

// Loader renders a blinking cursor spinner next to a label, like a
// terminal prompt waiting for output.
type Loader struct {
	spinner spinner.Model
	label   string
	stopped bool
}

// NewLoader returns a loader blinking the prompt cursor.
func NewLoader(label string) *Loader {
	s := spinner.New(spinner.WithSpinner(PromptCursor))
	return &Loader{
		spinner: s,
		label:   label,
	}
}

// SetLabel updates the loader label.
func (l *Loader) SetLabel(label string) {
	if l == nil {
		return
	}
	l.label = label
}

// SetStyle sets the cursor style.
func (l *Loader) SetStyle(style lipgloss.Style) {
	if l == nil {
		return
	}
	l.spinner.Style = style
}

// TickCmd starts the spinner animation.
func (l *Loader) TickCmd() tea.Cmd {
	if l == nil || l.stopped {
		return nil
	}
	return l.spinner.Tick
}

// Stop ends the animation; later spinner ticks are not rescheduled.
func (l *Loader) Stop() {
	if l == nil {
		return
	}
	l.stopped = true
}

// Update advances the spinner animation when receiving its own tick messages.
func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	if l == nil || l.stopped {
		return nil
	}

	switch tick := msg.(type) {
	case spinner.TickMsg:
		if tick.ID != l.spinner.ID() {
			return nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(tick)
		return cmd
	}

	return nil
}

// View renders the label followed by the cursor.
func (l *Loader) View() string {
	if l == nil {
		return ""
	}

	cursor := l.spinner.View()
	if l.label == "" {
		return cursor
	}
	return l.label + " " + cursor
}
