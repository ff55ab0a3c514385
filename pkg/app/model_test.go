package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"folio/pkg/config"
	"folio/pkg/content"
	"folio/pkg/gui/layout"
	"folio/pkg/gui/sections"
	"folio/pkg/prefs"
	"folio/pkg/storage"
	"folio/pkg/timing/timingtest"
)

const (
	screenWidth  = 80
	screenHeight = 24
)

type harness struct {
	t       *testing.T
	m       *Model
	sched   *timingtest.Scheduler
	durable *storage.MemoryStore
	session *storage.MemoryStore

	copied   []string
	opened   []string
	copyErr  error
	quitting bool
}

func newHarness(t *testing.T, setup func(durable, session *storage.MemoryStore)) *harness {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	h := &harness{
		t:       t,
		sched:   timingtest.New(),
		durable: storage.NewMemoryStore(),
		session: storage.NewMemoryStore(),
	}
	if setup != nil {
		setup(h.durable, h.session)
	}
	h.m = New(Options{
		Content:   c,
		Theme:     prefs.NewThemePreference(h.durable),
		Visits:    prefs.NewVisitFlag(h.session),
		Timing:    config.DefaultConfig().Timing,
		MaxStep:   15,
		Scheduler: h.sched,
		Rand:      func(n int) int { return n - 1 },
		Clipboard: func(s string) error {
			if h.copyErr != nil {
				return h.copyErr
			}
			h.copied = append(h.copied, s)
			return nil
		},
		Open: func(url string) error {
			h.opened = append(h.opened, url)
			return nil
		},
	})
	h.run(h.m.Init())
	h.send(tea.WindowSizeMsg{Width: screenWidth, Height: screenHeight})
	return h
}

func returning(durable, session *storage.MemoryStore) {
	_ = session.Set(prefs.VisitedKey, "true")
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.m.Update(msg)
	h.run(cmd)
}

// run executes cmd and feeds its messages back. Commands backed by real
// timers, such as the intro cursor animation, do not return in time and
// are dropped.
func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(20 * time.Millisecond):
		return
	}
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quitting = true
	default:
		h.send(msg)
	}
}

func (h *harness) advance(d time.Duration) {
	h.sched.Advance(d, h.send)
}

func (h *harness) key(s string) {
	var msg tea.KeyMsg
	switch s {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	h.send(msg)
}

func (h *harness) move(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

func (h *harness) click(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// screenOf returns a screen cell inside page region r, scrolling it into view
func (h *harness) screenOf(r layout.Rect) (int, int) {
	h.t.Helper()
	h.m.viewport.SetYOffset(r.Y)
	y := r.Y - h.m.YOffset()
	if y < 0 || y >= h.m.Layout().ViewportHeight() {
		h.t.Fatalf("region %+v not visible at offset %d", r, h.m.YOffset())
	}
	return r.X + h.m.Layout().PageMargin(), y
}

func TestFreshSessionShowsIntroThenPage(t *testing.T) {
	h := newHarness(t, nil)

	if !h.m.Intro().Visible() {
		t.Fatalf("intro not visible on a fresh session")
	}
	if view := h.m.View(); !strings.Contains(view, "0%") {
		t.Fatalf("intro view missing progress:\n%s", view)
	}

	// steps of 15 reach 100 on the seventh tick, then the hold runs
	h.advance(7 * 200 * time.Millisecond)
	if got := h.m.Intro().Progress(); got != 100 {
		t.Fatalf("progress = %d, want 100", got)
	}
	if !h.m.Intro().Visible() {
		t.Fatalf("intro hidden before the hold elapsed")
	}

	h.advance(500 * time.Millisecond)
	if h.m.Intro().Visible() || !h.m.Intro().Done() {
		t.Fatalf("intro phase = %s after hold, want done", h.m.Intro().Phase())
	}
	if v, _ := h.session.Get(prefs.VisitedKey); v != "true" {
		t.Fatalf("visit flag = %q, want true", v)
	}
	if view := h.m.View(); !strings.Contains(view, "View My Work") {
		t.Fatalf("page not rendered after intro:\n%s", view)
	}
}

func TestReturningDarkSessionRendersImmediately(t *testing.T) {
	h := newHarness(t, func(durable, session *storage.MemoryStore) {
		returning(durable, session)
		_ = durable.Set(prefs.ThemeKey, "dark")
	})

	if !h.m.Intro().Done() || h.m.Intro().Visible() {
		t.Fatalf("intro phase = %s, want done without showing", h.m.Intro().Phase())
	}
	if h.m.Theme() != prefs.ThemeDark {
		t.Fatalf("theme = %s, want dark", h.m.Theme())
	}
	// only the profile photo rotation is scheduled
	if got := h.sched.Pending(); got != 1 {
		t.Fatalf("pending timers = %d, want 1", got)
	}
	if view := h.m.View(); !strings.Contains(view, "View My Work") {
		t.Fatalf("page not rendered for a returning session:\n%s", view)
	}
}

func TestIntroBlocksInteraction(t *testing.T) {
	h := newHarness(t, nil)
	h.key("t")
	h.key("tab")
	if h.m.Theme() != prefs.ThemeLight || h.m.Nav().IsOpen() {
		t.Fatalf("keys acted while the intro was visible")
	}
}

func TestThemeToggleIsPersisted(t *testing.T) {
	h := newHarness(t, returning)

	h.key("t")
	if h.m.Theme() != prefs.ThemeDark {
		t.Fatalf("theme = %s after toggle, want dark", h.m.Theme())
	}
	if v, _ := h.durable.Get(prefs.ThemeKey); v != "dark" {
		t.Fatalf("stored theme = %q, want dark", v)
	}

	h.key("t")
	if v, _ := h.durable.Get(prefs.ThemeKey); v != "light" {
		t.Fatalf("stored theme = %q, want light", v)
	}
}

func TestNavHoverClosesAfterDelay(t *testing.T) {
	h := newHarness(t, returning)
	trigger := h.m.Layout().NavTrigger()

	h.move(trigger.X+1, trigger.Y)
	if !h.m.Nav().IsOpen() {
		t.Fatalf("nav closed while hovering the trigger")
	}

	h.move(10, 10)
	if !h.m.Nav().HasPendingClose() {
		t.Fatalf("no close scheduled after leaving")
	}
	h.advance(2999 * time.Millisecond)
	if !h.m.Nav().IsOpen() {
		t.Fatalf("nav closed before the delay")
	}

	// coming back cancels the close, leaving again restarts the full delay
	h.move(trigger.X+1, trigger.Y)
	h.move(10, 10)
	h.advance(2999 * time.Millisecond)
	if !h.m.Nav().IsOpen() {
		t.Fatalf("stale close fired")
	}
	h.advance(time.Millisecond)
	if h.m.Nav().IsOpen() {
		t.Fatalf("nav still open after the delay")
	}
}

func TestNavItemClickScrollsAndCloses(t *testing.T) {
	h := newHarness(t, returning)
	trigger := h.m.Layout().NavTrigger()
	h.move(trigger.X+1, trigger.Y)

	w, ph := h.m.navPanel.Size()
	panel := h.m.Layout().NavPanel(w, ph)
	item, ok := h.m.navPanel.Hits().First(layout.RegionNavItem, int(sections.Projects))
	if !ok {
		t.Fatalf("no nav item for projects")
	}
	h.move(panel.X+1, panel.Y+item.Rect.Y)
	if !h.m.Nav().IsOpen() {
		t.Fatalf("nav closed while hovering the panel")
	}
	h.click(panel.X+1, panel.Y+item.Rect.Y)

	if h.m.Nav().IsOpen() || h.m.Nav().HasPendingClose() {
		t.Fatalf("nav open = %v pending = %v after select", h.m.Nav().IsOpen(), h.m.Nav().HasPendingClose())
	}
	if got, want := h.m.YOffset(), expectedOffset(h, sections.Projects); got != want {
		t.Fatalf("offset = %d, want %d", got, want)
	}
}

func TestNavThemeRowToggles(t *testing.T) {
	h := newHarness(t, returning)
	h.key("tab")
	w, ph := h.m.navPanel.Size()
	panel := h.m.Layout().NavPanel(w, ph)
	row, _ := h.m.navPanel.Hits().First(layout.RegionNavTheme, 0)
	h.click(panel.X+1, panel.Y+row.Rect.Y)
	if h.m.Theme() != prefs.ThemeDark {
		t.Fatalf("theme = %s, want dark", h.m.Theme())
	}
	if !h.m.Nav().IsOpen() {
		t.Fatalf("theme toggle closed the nav")
	}
}

func expectedOffset(h *harness, id sections.ID) int {
	want := h.m.Page().Anchor(id)
	if max := h.m.Page().Height() - h.m.Layout().ViewportHeight(); want > max {
		want = max
	}
	return want
}

func TestSectionKeysSelectThroughNav(t *testing.T) {
	h := newHarness(t, returning)
	h.key("tab")
	h.key("5")
	if h.m.Nav().IsOpen() {
		t.Fatalf("nav open after selecting a section")
	}
	if got, want := h.m.YOffset(), expectedOffset(h, sections.Contact); got != want {
		t.Fatalf("offset = %d, want %d", got, want)
	}
	h.key("1")
	if h.m.YOffset() != 0 {
		t.Fatalf("offset = %d after home, want 0", h.m.YOffset())
	}
}

func TestEscClosesNav(t *testing.T) {
	h := newHarness(t, returning)
	h.key("tab")
	h.key("esc")
	if h.m.Nav().IsOpen() || h.m.Nav().HasPendingClose() {
		t.Fatalf("nav still open after esc")
	}
}

func TestHeroButtonScrolls(t *testing.T) {
	h := newHarness(t, returning)
	region, ok := h.m.Page().Hits.First(layout.RegionButton, int(sections.Projects))
	if !ok {
		t.Fatalf("no button to projects")
	}
	x, y := h.screenOf(region.Rect)
	h.click(x, y)
	if got, want := h.m.YOffset(), expectedOffset(h, sections.Projects); got != want {
		t.Fatalf("offset = %d, want %d", got, want)
	}
}

func TestPhotoRotatesContinuously(t *testing.T) {
	h := newHarness(t, returning)
	var got []int
	for i := 0; i < 4; i++ {
		h.advance(4000 * time.Millisecond)
		got = append(got, h.m.Photos().Active())
	}
	if diff := cmp.Diff([]int{1, 2, 0, 1}, got); diff != "" {
		t.Fatalf("photo sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestCardHoverDrivesCarousel(t *testing.T) {
	h := newHarness(t, returning)
	region, ok := h.m.Page().Hits.First(layout.RegionCard, 0)
	if !ok {
		t.Fatalf("no card region")
	}
	x, y := h.screenOf(region.Rect)
	h.move(x+1, y)
	if h.m.HoveredCard() != 0 || !h.m.Carousel(0).Running() {
		t.Fatalf("card 0 hovered = %d running = %v", h.m.HoveredCard(), h.m.Carousel(0).Running())
	}

	h.advance(2000 * time.Millisecond)
	if got := h.m.Carousel(0).Active(); got != 1 {
		t.Fatalf("screenshot = %d after one interval, want 1", got)
	}
	if !strings.Contains(h.m.Page().Body, "playing") {
		t.Fatalf("hovered card does not show playing")
	}

	// off the card the carousel pauses and keeps its index
	h.move(x+1, h.m.Layout().ViewportHeight())
	if h.m.HoveredCard() != -1 || h.m.Carousel(0).Running() {
		t.Fatalf("carousel still running after leaving")
	}
	h.advance(10 * time.Second)
	if got := h.m.Carousel(0).Active(); got != 1 {
		t.Fatalf("paused carousel moved to %d", got)
	}
}

func TestCardKeysMoveHoverAndSelectShots(t *testing.T) {
	h := newHarness(t, returning)

	h.key("right")
	if h.m.HoveredCard() != 0 || !h.m.Carousel(0).Running() {
		t.Fatalf("first right did not hover card 0")
	}
	region, _ := h.m.Page().Hits.First(layout.RegionCard, 0)
	if top := h.m.YOffset(); region.Rect.Y < top || region.Rect.Y >= top+h.m.Layout().ViewportHeight() {
		t.Fatalf("card 0 at row %d not visible from %d", region.Rect.Y, top)
	}

	h.key("]")
	h.key("]")
	if got := h.m.Carousel(0).Active(); got != 0 {
		t.Fatalf("card 0 with 2 shots at %d after two steps, want 0", got)
	}
	h.key("[")
	if got := h.m.Carousel(0).Active(); got != 1 {
		t.Fatalf("previous shot = %d, want 1", got)
	}

	h.key("right")
	if h.m.HoveredCard() != 1 || h.m.Carousel(0).Running() || !h.m.Carousel(1).Running() {
		t.Fatalf("hover did not move from card 0 to card 1")
	}

	h.key("left")
	h.key("left")
	if h.m.HoveredCard() != 0 {
		t.Fatalf("hovered card = %d, want clamped at 0", h.m.HoveredCard())
	}
}

func TestDotClickSelectsScreenshot(t *testing.T) {
	h := newHarness(t, returning)
	// project 3 has four screenshots
	dot, ok := h.m.Page().Hits.First(layout.RegionDot, 3)
	if !ok {
		t.Fatalf("no dots for project 3")
	}
	x, y := h.screenOf(dot.Rect)
	h.click(x+2*2, y)
	if got := h.m.Carousel(3).Active(); got != 2 {
		t.Fatalf("screenshot = %d after clicking the third dot, want 2", got)
	}
	if h.m.Carousel(3).Running() {
		t.Fatalf("clicking a dot started the carousel")
	}
}

func TestCopyEmailShowsStatus(t *testing.T) {
	h := newHarness(t, returning)
	h.key("e")
	if diff := cmp.Diff([]string{h.m.content.Contact.Email}, h.copied); diff != "" {
		t.Fatalf("clipboard mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(h.m.Status(), "email copied") {
		t.Fatalf("status = %q", h.m.Status())
	}
	h.advance(statusDuration)
	if h.m.Status() != "" {
		t.Fatalf("status = %q after timeout, want cleared", h.m.Status())
	}
}

func TestCopyFailureIsReported(t *testing.T) {
	h := newHarness(t, returning)
	h.copyErr = errors.New("no clipboard")
	h.key("p")
	if !strings.Contains(h.m.Status(), "could not copy phone") {
		t.Fatalf("status = %q", h.m.Status())
	}
}

func TestCopyRegionClick(t *testing.T) {
	h := newHarness(t, returning)
	region, ok := h.m.Page().Hits.First(layout.RegionCopy, sections.CopyPhone)
	if !ok {
		t.Fatalf("no phone region")
	}
	x, y := h.screenOf(region.Rect)
	h.click(x+1, y)
	if diff := cmp.Diff([]string{h.m.content.Contact.Phone}, h.copied); diff != "" {
		t.Fatalf("clipboard mismatch (-want +got):\n%s", diff)
	}
}

func TestSocialKeyOpensProfile(t *testing.T) {
	h := newHarness(t, returning)
	h.key("g")
	social, _ := h.m.content.SocialByKey("g")
	if diff := cmp.Diff([]string{social.URL}, h.opened); diff != "" {
		t.Fatalf("opened mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpOverlayOpensAndCloses(t *testing.T) {
	h := newHarness(t, returning)
	h.key("?")
	if !h.m.showHelp {
		t.Fatalf("help not shown")
	}
	h.key("x")
	if h.m.showHelp {
		t.Fatalf("help still shown after a key")
	}
}

func TestQuitDisposesControllers(t *testing.T) {
	h := newHarness(t, returning)
	trigger := h.m.Layout().NavTrigger()
	h.move(trigger.X+1, trigger.Y)
	h.move(10, 10)
	h.key("right")

	h.key("q")
	if !h.quitting || !h.m.Disposed() {
		t.Fatalf("quit = %v disposed = %v", h.quitting, h.m.Disposed())
	}

	photo, shot := h.m.Photos().Active(), h.m.Carousel(0).Active()
	h.advance(time.Minute)
	if h.m.Photos().Active() != photo || h.m.Carousel(0).Active() != shot {
		t.Fatalf("timers acted after quit")
	}
	if !h.m.Nav().IsOpen() {
		t.Fatalf("disposed nav closed from a stale timer")
	}
}

func TestQuitDuringIntroCancelsIt(t *testing.T) {
	h := newHarness(t, nil)
	h.advance(400 * time.Millisecond)
	h.key("q")
	h.advance(time.Minute)
	if h.m.Intro().Done() {
		t.Fatalf("intro completed after quit")
	}
	if v, _ := h.session.Get(prefs.VisitedKey); v == "true" {
		t.Fatalf("visit flag written after quit")
	}
}

func TestRenderStatic(t *testing.T) {
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	out := RenderStatic(c, prefs.ThemeLight, 60)
	for _, want := range []string{"View My Work", c.Contact.Email} {
		if !strings.Contains(out, want) {
			t.Fatalf("static page missing %q", want)
		}
	}
	if strings.Contains(out, "playing") {
		t.Fatalf("static page shows a playing carousel")
	}
}
