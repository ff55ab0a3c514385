package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"folio/pkg/timing/timingtest"
)

func rotatorDeliver(r *Rotator) func(tea.Msg) {
	return func(msg tea.Msg) { r.Update(msg) }
}

func TestRotatorAdvancesModN(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		sched := timingtest.New()
		r := NewRotator(n, 2*time.Second, sched)
		r.Start()
		for k := 1; k <= 3*n+1; k++ {
			sched.Advance(2*time.Second, rotatorDeliver(r))
			if r.Active() != k%n {
				t.Fatalf("n=%d after %d ticks: active = %d, want %d", n, k, r.Active(), k%n)
			}
		}
	}
}

func TestRotatorSingleItemNeverTicks(t *testing.T) {
	for _, n := range []int{0, 1} {
		sched := timingtest.New()
		r := NewRotator(n, time.Second, sched)
		if cmd := r.Start(); cmd != nil {
			t.Fatalf("n=%d: start scheduled a tick", n)
		}
		if sched.Pending() != 0 {
			t.Fatalf("n=%d: pending = %d, want 0", n, sched.Pending())
		}
		sched.Advance(10*time.Second, rotatorDeliver(r))
		if r.Active() != 0 {
			t.Fatalf("n=%d: active = %d, want 0", n, r.Active())
		}
		if r.Role(0) != RoleActive {
			t.Fatalf("n=%d: role(0) = %v, want active", n, r.Role(0))
		}
	}
}

func TestRotatorPreviousIndex(t *testing.T) {
	r := NewRotator(3, time.Second, timingtest.New())
	if r.Previous() != 2 {
		t.Fatalf("previous of 0 with n=3 = %d, want 2", r.Previous())
	}
	r.SelectIndex(1)
	got := []Role{r.Role(0), r.Role(1), r.Role(2)}
	want := []Role{RolePrevious, RoleActive, RoleHidden}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("roles (-want +got):\n%s", diff)
	}
}

func TestRotatorSelectIndex(t *testing.T) {
	r := NewRotator(4, time.Second, timingtest.New())
	r.SelectIndex(3)
	if r.Active() != 3 {
		t.Fatalf("active = %d, want 3", r.Active())
	}
	r.SelectIndex(4)
	r.SelectIndex(-1)
	if r.Active() != 3 {
		t.Fatalf("out of range select changed active to %d", r.Active())
	}
}

func TestRotatorPauseKeepsIndexAndResumeRestartsInterval(t *testing.T) {
	sched := timingtest.New()
	r := NewRotator(4, 2*time.Second, sched)
	deliver := rotatorDeliver(r)
	r.Start()
	sched.Advance(2*time.Second, deliver)
	sched.Advance(1500*time.Millisecond, deliver)
	r.Pause()
	sched.Advance(10*time.Second, deliver)
	if r.Active() != 1 {
		t.Fatalf("paused rotator moved to %d", r.Active())
	}

	r.Resume()
	sched.Advance(1999*time.Millisecond, deliver)
	if r.Active() != 1 {
		t.Fatal("resume should wait a full interval")
	}
	sched.Advance(time.Millisecond, deliver)
	if r.Active() != 2 {
		t.Fatalf("active = %d after resumed interval, want 2", r.Active())
	}
}

func TestRotatorResumeWhileRunningKeepsCadence(t *testing.T) {
	sched := timingtest.New()
	r := NewRotator(3, 2*time.Second, sched)
	deliver := rotatorDeliver(r)
	r.Start()
	sched.Advance(1500*time.Millisecond, deliver)
	if cmd := r.Resume(); cmd != nil {
		t.Fatal("resume on a running rotator rescheduled")
	}
	sched.Advance(500*time.Millisecond, deliver)
	if r.Active() != 1 {
		t.Fatalf("active = %d, want 1", r.Active())
	}
}

// Carousel with four screenshots: hover cycles every 2s, clicking dot 2
// mid-cycle jumps at once and the next advance keeps the original cadence.
func TestRotatorCarouselScenario(t *testing.T) {
	sched := timingtest.New()
	r := NewRotator(4, 2*time.Second, sched)
	deliver := rotatorDeliver(r)

	r.Resume()
	var seen []int
	for i := 0; i < 4; i++ {
		sched.Advance(2*time.Second, deliver)
		seen = append(seen, r.Active())
	}
	if diff := cmp.Diff([]int{1, 2, 3, 0}, seen); diff != "" {
		t.Fatalf("cycle (-want +got):\n%s", diff)
	}

	sched.Advance(time.Second, deliver)
	r.SelectIndex(2)
	if r.Active() != 2 {
		t.Fatalf("active = %d right after selecting dot 2", r.Active())
	}
	sched.Advance(999*time.Millisecond, deliver)
	if r.Active() != 2 {
		t.Fatal("advance fired early after selection")
	}
	sched.Advance(time.Millisecond, deliver)
	if r.Active() != 3 {
		t.Fatalf("active = %d at original cadence, want 3", r.Active())
	}
}

func TestRotatorSetLenClamps(t *testing.T) {
	sched := timingtest.New()
	r := NewRotator(4, time.Second, sched)
	deliver := rotatorDeliver(r)
	r.Start()
	r.SelectIndex(3)

	r.SetLen(2)
	if r.Active() != 1 {
		t.Fatalf("active = %d after shrink to 2, want 1", r.Active())
	}
	r.SetLen(0)
	if r.Active() != 0 {
		t.Fatalf("active = %d after shrink to 0, want 0", r.Active())
	}
	sched.Advance(5*time.Second, deliver)
	if r.Active() != 0 {
		t.Fatal("empty rotator advanced")
	}

	if cmd := r.SetLen(3); cmd == nil {
		t.Fatal("growing a running rotator should schedule a tick")
	}
	sched.Advance(time.Second, deliver)
	if r.Active() != 1 {
		t.Fatalf("active = %d after regrow tick, want 1", r.Active())
	}
}

func TestRotatorStopIgnoresLaterTicks(t *testing.T) {
	sched := timingtest.New()
	r := NewRotator(3, time.Second, sched)
	r.Start()
	r.Stop()
	sched.Advance(5*time.Second, rotatorDeliver(r))
	if r.Active() != 0 || r.Running() {
		t.Fatalf("stopped rotator active=%d running=%v", r.Active(), r.Running())
	}
	if cmd := r.Start(); cmd != nil {
		t.Fatal("stopped rotator restarted")
	}
}
