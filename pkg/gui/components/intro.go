package components

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/pkg/timing"
)

// IntroPhase is the state of the loading intro
type IntroPhase int

const (
	IntroIdle IntroPhase = iota
	IntroRunning
	IntroHolding
	IntroDone
)

func (p IntroPhase) String() string {
	switch p {
	case IntroRunning:
		return "running"
	case IntroHolding:
		return "holding"
	case IntroDone:
		return "done"
	default:
		return "idle"
	}
}

const (
	DefaultIntroTick    = 200 * time.Millisecond
	DefaultIntroHold    = 500 * time.Millisecond
	DefaultIntroMaxStep = 15
)

// VisitRecorder is the session flag that decides whether the intro runs
type VisitRecorder interface {
	Visited() bool
	MarkVisited() error
}

// IntroOptions tunes the intro. Zero fields take the defaults.
type IntroOptions struct {
	Tick    time.Duration
	Hold    time.Duration
	MaxStep int
	// Rand returns a value in [0, n). Defaults to math/rand/v2 IntN.
	Rand func(n int) int
}

// IntroCompleteMsg is emitted once when the intro finishes. Skipped is true
// when the session had already seen it.
type IntroCompleteMsg struct {
	Skipped bool
}

type introTickMsg struct {
	id  int
	tag int
}

type introHoldMsg struct {
	id  int
	tag int
}

// Intro animates a progress value from 0 to 100 in random steps, holds at
// 100 briefly and then records the visit. It runs at most once per session.
type Intro struct {
	id        int
	tag       int
	phase     IntroPhase
	progress  int
	completed bool
	disposed  bool

	opts   IntroOptions
	visits VisitRecorder
	sched  timing.Scheduler
}

// NewIntro returns an idle intro bound to the session visit flag
func NewIntro(visits VisitRecorder, opts IntroOptions, sched timing.Scheduler) *Intro {
	if opts.Tick <= 0 {
		opts.Tick = DefaultIntroTick
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultIntroHold
	}
	if opts.MaxStep < 1 {
		opts.MaxStep = DefaultIntroMaxStep
	}
	if opts.Rand == nil {
		opts.Rand = rand.IntN
	}
	return &Intro{
		id:     nextID(),
		opts:   opts,
		visits: visits,
		sched:  timing.OrDefault(sched),
	}
}

// Phase returns the current phase
func (in *Intro) Phase() IntroPhase {
	return in.phase
}

// Progress returns the current progress in [0, 100]
func (in *Intro) Progress() int {
	return in.progress
}

// Done reports whether the intro has finished or was skipped
func (in *Intro) Done() bool {
	return in.phase == IntroDone
}

// Visible reports whether the intro overlay should be drawn
func (in *Intro) Visible() bool {
	return !in.disposed && (in.phase == IntroRunning || in.phase == IntroHolding)
}

// Mount starts the intro, or finishes it at once when the session has
// already seen it. Only the first call has an effect.
func (in *Intro) Mount() tea.Cmd {
	if in.disposed || in.phase != IntroIdle {
		return nil
	}
	if in.visits != nil && in.visits.Visited() {
		in.phase = IntroDone
		in.progress = 100
		return in.complete(true)
	}
	in.phase = IntroRunning
	in.progress = 0
	in.tag++
	return in.sched.After(in.opts.Tick, introTickMsg{id: in.id, tag: in.tag})
}

// Update handles the intro's own tick and hold messages
func (in *Intro) Update(msg tea.Msg) tea.Cmd {
	if in.disposed {
		return nil
	}
	switch m := msg.(type) {
	case introTickMsg:
		if m.id != in.id || m.tag != in.tag || in.phase != IntroRunning {
			return nil
		}
		return in.step()
	case introHoldMsg:
		if m.id != in.id || m.tag != in.tag || in.phase != IntroHolding {
			return nil
		}
		if in.visits != nil {
			// a failed write only means the intro shows again next start
			_ = in.visits.MarkVisited()
		}
		in.phase = IntroDone
		return in.complete(false)
	}
	return nil
}

func (in *Intro) step() tea.Cmd {
	in.progress += in.opts.Rand(in.opts.MaxStep) + 1
	in.tag++
	if in.progress >= 100 {
		in.progress = 100
		in.phase = IntroHolding
		return in.sched.After(in.opts.Hold, introHoldMsg{id: in.id, tag: in.tag})
	}
	return in.sched.After(in.opts.Tick, introTickMsg{id: in.id, tag: in.tag})
}

func (in *Intro) complete(skipped bool) tea.Cmd {
	if in.completed {
		return nil
	}
	in.completed = true
	return func() tea.Msg {
		return IntroCompleteMsg{Skipped: skipped}
	}
}

// Dispose cancels pending ticks and the hold; the intro ignores every later
// message.
func (in *Intro) Dispose() {
	in.tag++
	in.disposed = true
}
