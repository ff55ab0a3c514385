// Package app composes the portfolio page: it owns the timer controllers,
// feeds their state to the section renderers and turns pointer and key
// events into controller calls.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/pkg/common"
	"folio/pkg/config"
	"folio/pkg/content"
	"folio/pkg/gui/components"
	"folio/pkg/gui/layout"
	"folio/pkg/gui/overlays"
	"folio/pkg/gui/sections"
	"folio/pkg/gui/theme"
	"folio/pkg/opener"
	"folio/pkg/prefs"
	"folio/pkg/timing"
)

// statusDuration is how long a footer status message stays up
const statusDuration = 2 * time.Second

// Options wires a Model to its content, storage and side effects
type Options struct {
	Content *content.Content
	Theme   *prefs.ThemePreference
	Visits  *prefs.VisitFlag

	Timing  config.TimingConfig
	MaxStep int

	// Scheduler and Rand default to tea.Tick and math/rand
	Scheduler timing.Scheduler
	Rand      func(n int) int

	// Clipboard and Open default to the system clipboard and opener
	Clipboard func(string) error
	Open      func(string) error

	LogPath string
}

// Model is the portfolio page
type Model struct {
	content *content.Content
	themes  *prefs.ThemePreference
	sched   timing.Scheduler

	layout   *layout.Layout
	keys     *common.GlobalKeyMap
	viewport viewport.Model
	page     sections.Page

	mode   prefs.Theme
	styles theme.Styles

	// Controllers
	nav       *components.HoverPanel
	intro     *components.Intro
	photos    *components.Rotator
	carousels []*components.Rotator

	// Pointer state
	navHovered  bool
	hoveredCard int

	// Overlays and chrome
	navPanel        *overlays.NavPanel
	introOverlay    *overlays.IntroOverlay
	helpDialog      *overlays.HelpDialog
	showHelp        bool
	debugOverlay    *overlays.DebugOverlay
	showDebug       bool
	shortcutOverlay *common.ShortcutOverlay
	footer          *common.Footer
	statusID        int

	clipboard func(string) error
	open      func(string) error

	ready    bool
	disposed bool
}

// New builds the page. The intro does not start until Init.
func New(opts Options) *Model {
	sched := timing.OrDefault(opts.Scheduler)
	opts.Timing = withDefaults(opts.Timing)
	mode := opts.Theme.Read()
	styles := theme.NewStyles(mode)
	keys := common.NewGlobalKeyMap()

	vp := viewport.New(0, 0)
	vp.KeyMap = keys.ViewportKeyMap()

	shortcutOverlay := common.NewShortcutOverlay(keys)
	footer := common.NewFooter(styles)
	footer.SetShortcutOverlay(shortcutOverlay)

	c := opts.Content
	if c == nil {
		c = &content.Content{}
	}

	m := &Model{
		content:  c,
		themes:   opts.Theme,
		sched:    sched,
		layout:   layout.NewLayout(0, 0),
		keys:     keys,
		viewport: vp,
		mode:     mode,
		styles:   styles,

		nav: components.NewHoverPanel(opts.Timing.NavClose, sched),
		intro: components.NewIntro(opts.Visits, components.IntroOptions{
			Tick:    opts.Timing.IntroTick,
			Hold:    opts.Timing.IntroHold,
			MaxStep: opts.MaxStep,
			Rand:    opts.Rand,
		}, sched),
		photos: components.NewRotator(len(c.About.Photos), opts.Timing.PhotoInterval, sched),

		hoveredCard: -1,

		navPanel:        overlays.NewNavPanel(sections.Names(), mode),
		introOverlay:    overlays.NewIntroOverlay(c.Hero.Name, styles),
		helpDialog:      overlays.NewHelpDialog(keys, "folio: "+c.Hero.Name, styles),
		debugOverlay:    overlays.NewDebugOverlay(opts.LogPath, styles),
		shortcutOverlay: shortcutOverlay,
		footer:          footer,

		clipboard: opts.Clipboard,
		open:      opts.Open,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if m.open == nil {
		m.open = opener.Open
	}
	for _, n := range c.ScreenshotCounts() {
		m.carousels = append(m.carousels, components.NewRotator(n, opts.Timing.CarouselInterval, sched))
	}
	return m
}

// withDefaults fills unset intervals from the default configuration
func withDefaults(t config.TimingConfig) config.TimingConfig {
	d := config.DefaultConfig().Timing
	if t.NavClose <= 0 {
		t.NavClose = d.NavClose
	}
	if t.IntroTick <= 0 {
		t.IntroTick = d.IntroTick
	}
	if t.IntroHold <= 0 {
		t.IntroHold = d.IntroHold
	}
	if t.PhotoInterval <= 0 {
		t.PhotoInterval = d.PhotoInterval
	}
	if t.CarouselInterval <= 0 {
		t.CarouselInterval = d.CarouselInterval
	}
	return t
}

// Init implements tea.Model: it mounts the intro and starts the profile
// photo rotation.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.intro.Mount(), m.photos.Start()}
	if m.intro.Visible() {
		cmds = append(cmds, m.introOverlay.Init())
	}
	return tea.Batch(cmds...)
}

// Theme returns the active theme
func (m *Model) Theme() prefs.Theme {
	return m.mode
}

// Nav returns the navigation panel controller
func (m *Model) Nav() *components.HoverPanel {
	return m.nav
}

// Intro returns the intro controller
func (m *Model) Intro() *components.Intro {
	return m.intro
}

// Photos returns the profile photo rotator
func (m *Model) Photos() *components.Rotator {
	return m.photos
}

// Carousel returns the screenshot rotator of project i
func (m *Model) Carousel(i int) *components.Rotator {
	if i < 0 || i >= len(m.carousels) {
		return nil
	}
	return m.carousels[i]
}

// HoveredCard returns the project under the pointer, or -1
func (m *Model) HoveredCard() int {
	return m.hoveredCard
}

// Page returns the last rendered page
func (m *Model) Page() sections.Page {
	return m.page
}

// Layout returns the screen geometry
func (m *Model) Layout() *layout.Layout {
	return m.layout
}

// YOffset returns the first visible page row
func (m *Model) YOffset() int {
	return m.viewport.YOffset
}

// Status returns the footer status message
func (m *Model) Status() string {
	return m.footer.Status()
}

// Disposed reports whether the page was torn down
func (m *Model) Disposed() bool {
	return m.disposed
}

// applyTheme restyles everything for the current theme
func (m *Model) applyTheme() {
	m.styles = theme.NewStyles(m.mode)
	m.navPanel.SetTheme(m.mode)
	m.introOverlay.SetStyles(m.styles)
	m.helpDialog.SetStyles(m.styles)
	m.debugOverlay.SetStyles(m.styles)
	m.footer.SetStyles(m.styles)
}

// refresh re-renders the page and the footer context
func (m *Model) refresh() {
	state := sections.State{
		Content:     m.content,
		Styles:      m.styles,
		Width:       m.layout.PageWidth(),
		PhotoActive: m.photos.Active(),
		HoveredCard: m.hoveredCard,
	}
	for i := 0; i < m.photos.Len(); i++ {
		state.PhotoRoles = append(state.PhotoRoles, m.photos.Role(i))
	}
	for _, c := range m.carousels {
		state.Shots = append(state.Shots, c.Active())
	}
	if card := m.Carousel(m.hoveredCard); card != nil {
		state.Playing = card.Running()
	}
	m.page = sections.Render(state)

	margin := strings.Repeat(" ", m.layout.PageMargin())
	lines := strings.Split(m.page.Body, "\n")
	for i, line := range lines {
		lines[i] = margin + line
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	m.shortcutOverlay.SetContext(m.context())
}

func (m *Model) context() common.Context {
	switch {
	case m.intro.Visible():
		return common.ContextIntro
	case m.nav.IsOpen():
		return common.ContextNav
	case m.hoveredCard >= 0:
		return common.ContextCard
	case m.page.SectionAt(m.viewport.YOffset+m.viewport.Height/2) == sections.Contact:
		return common.ContextContact
	default:
		return common.ContextPage
	}
}

// dispose tears down every controller so no timer acts after quit
func (m *Model) dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.nav.Dispose()
	m.intro.Dispose()
	m.introOverlay.Stop()
	m.photos.Stop()
	for _, c := range m.carousels {
		c.Stop()
	}
}

// String describes the model for debug logs
func (m *Model) String() string {
	return fmt.Sprintf("theme=%s intro=%s nav_open=%v card=%d", m.mode, m.intro.Phase(), m.nav.IsOpen(), m.hoveredCard)
}
