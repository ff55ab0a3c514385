package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"folio/internal/debug"
	"folio/pkg/gui/components"
	"folio/pkg/gui/layout"
	"folio/pkg/gui/overlays"
	"folio/pkg/gui/sections"
)

// scrollToMsg moves the page to a section
type scrollToMsg struct {
	section sections.ID
}

// statusMsg shows a transient footer message
type statusMsg struct {
	text string
}

// clearStatusMsg removes status id from the footer if it is still shown
type clearStatusMsg struct {
	id int
}

func scrollTo(id sections.ID) tea.Cmd {
	return func() tea.Msg {
		return scrollToMsg{section: id}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.disposed {
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case components.IntroCompleteMsg:
		m.introOverlay.Stop()
		debug.Log().Debug("intro complete", zap.Bool("skipped", msg.Skipped))

	case spinner.TickMsg:
		if m.intro.Visible() {
			cmds = append(cmds, m.introOverlay.Update(msg))
		}

	case scrollToMsg:
		m.viewport.SetYOffset(m.page.Anchor(msg.section))

	case statusMsg:
		m.statusID++
		m.footer.SetStatus(msg.text)
		cmds = append(cmds, m.sched.After(statusDuration, clearStatusMsg{id: m.statusID}))

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.footer.SetStatus("")
		}

	case overlays.HelpClosedMsg:
		m.showHelp = false

	case overlays.DebugOverlayClosedMsg:
		m.showDebug = false

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, cmd
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	}

	// Controllers drop every message that is not their own current timer
	cmds = append(cmds, m.nav.Update(msg), m.intro.Update(msg), m.photos.Update(msg))
	for _, c := range m.carousels {
		cmds = append(cmds, c.Update(msg))
	}

	if m.ready {
		m.refresh()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.layout.Update(width, height)
	m.viewport.Width = width
	m.viewport.Height = m.layout.ViewportHeight()
	m.footer.SetSize(width, layout.FooterRows)
	m.introOverlay.SetSize(width, height)
	m.helpDialog.SetSize(width, height)
	m.debugOverlay.SetSize(width-4, height-4)
	m.ready = true
}

// handleKey returns the key's command and whether the program is quitting
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// q closes the debug viewer rather than the program
	if key.Matches(msg, m.keys.Quit) && !(m.showDebug && msg.String() == "q") {
		m.dispose()
		return tea.Quit, true
	}

	switch {
	case m.intro.Visible():
		return nil, false
	case m.showHelp:
		return m.helpDialog.Update(msg), false
	case m.showDebug:
		return m.debugOverlay.Update(msg), false
	}

	switch {
	case key.Matches(msg, m.keys.Keybindings):
		m.showHelp = true
	case key.Matches(msg, m.keys.DebugLog):
		m.debugOverlay.Refresh()
		m.showDebug = true
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.OpenNav):
		return m.nav.Enter(), false
	case key.Matches(msg, m.keys.CloseNav):
		m.nav.Close()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PrevCard):
		return m.stepCard(-1), false
	case key.Matches(msg, m.keys.NextCard):
		return m.stepCard(1), false
	case key.Matches(msg, m.keys.PrevShot):
		m.stepShot(-1)
	case key.Matches(msg, m.keys.NextShot):
		m.stepShot(1)
	case key.Matches(msg, m.keys.CopyEmail):
		return m.copy("email", m.content.Contact.Email), false
	case key.Matches(msg, m.keys.CopyPhone):
		return m.copy("phone", m.content.Contact.Phone), false
	case key.Matches(msg, m.keys.GitHub), key.Matches(msg, m.keys.Facebook):
		if social, ok := m.content.SocialByKey(msg.String()); ok {
			return m.openURL(social.Name, social.URL), false
		}
	default:
		for i, b := range m.keys.SectionKeys() {
			if key.Matches(msg, b) {
				return m.nav.Select(scrollTo(sections.ID(i))), false
			}
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd, false
	}
	return nil, false
}

func (m *Model) toggleTheme() {
	m.mode = m.mode.Toggled()
	if err := m.themes.Write(m.mode); err != nil {
		debug.Log().Debug("theme not saved", zap.Error(err))
	}
	m.applyTheme()
}

// hoverCard moves the pointer hover to project i, or off every card for -1.
// The carousel of the card left behind pauses, the new one resumes.
func (m *Model) hoverCard(i int) tea.Cmd {
	if i == m.hoveredCard {
		return nil
	}
	if old := m.Carousel(m.hoveredCard); old != nil {
		old.Pause()
	}
	m.hoveredCard = i
	if card := m.Carousel(i); card != nil {
		return card.Resume()
	}
	return nil
}

func (m *Model) stepCard(delta int) tea.Cmd {
	n := len(m.carousels)
	if n == 0 {
		return nil
	}
	next := m.hoveredCard + delta
	if m.hoveredCard < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	cmd := m.hoverCard(next)
	m.refresh()
	m.scrollIntoView(layout.RegionCard, next)
	return cmd
}

func (m *Model) stepShot(delta int) {
	card := m.Carousel(m.hoveredCard)
	if card == nil || card.Len() == 0 {
		return
	}
	n := card.Len()
	card.SelectIndex((card.Active() + delta + n) % n)
}

// scrollIntoView scrolls so the first region of kind and index is visible
func (m *Model) scrollIntoView(kind layout.RegionKind, index int) {
	region, ok := m.page.Hits.First(kind, index)
	if !ok {
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	if region.Rect.Y < top || region.Rect.Y+region.Rect.H > bottom {
		m.viewport.SetYOffset(region.Rect.Y)
	}
}

func (m *Model) copy(label, value string) tea.Cmd {
	write := m.clipboard
	return func() tea.Msg {
		if err := write(value); err != nil {
			debug.Log().Debug("clipboard write failed", zap.String("field", label), zap.Error(err))
			return statusMsg{text: fmt.Sprintf("could not copy %s", label)}
		}
		return statusMsg{text: fmt.Sprintf("%s copied: %s", label, value)}
	}
}

func (m *Model) openURL(name, url string) tea.Cmd {
	open := m.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			debug.Log().Debug("open failed", zap.String("url", url), zap.Error(err))
			return statusMsg{text: fmt.Sprintf("could not open %s", name)}
		}
		return statusMsg{text: fmt.Sprintf("opening %s", name)}
	}
}
