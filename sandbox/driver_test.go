package sandbox

import (
	"testing"
	"time"
)

func TestDriverRunsWholeTicks(t *testing.T) {
	s := newFlatSession(t)
	d := NewDriver(s, 60)

	cases := []struct {
		name  string
		dt    time.Duration
		ticks int
	}{
		{"partial", 10 * time.Millisecond, 0},
		{"completes_one", 10 * time.Millisecond, 1},
		{"exact_step", time.Second / 60, 1},
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
		{"two_and_change", 40 * time.Millisecond, 2},
	}
	var total uint64
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := d.Advance(c.dt, Input{}); got != c.ticks {
				t.Fatalf("Advance(%v) ran %d ticks, want %d", c.dt, got, c.ticks)
			}
			total += uint64(c.ticks)
			if s.Frames() != total {
				t.Fatalf("session saw %d frames, want %d", s.Frames(), total)
			}
			if d.Pending() >= d.Step {
				t.Fatalf("pending %v should stay below one step", d.Pending())
			}
		})
	}
}

func TestDriverDropsBacklogPastMaxTicks(t *testing.T) {
	s := newFlatSession(t)
	d := NewDriver(s, 60)
	d.MaxTicks = 3

	if got := d.Advance(time.Second, Input{}); got != 3 {
		t.Fatalf("expected 3 ticks, got %d", got)
	}
	if d.Pending() != 0 {
		t.Fatalf("expected backlog to be dropped, pending %v", d.Pending())
	}

	d.MaxTicks = 0
	if got := d.Advance(time.Second, Input{}); got != 60 {
		t.Fatalf("unbounded driver should run 60 ticks, got %d", got)
	}
}
