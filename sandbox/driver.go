package sandbox

import "time"

const defaultMaxTicks = 5

// Driver runs a session at a fixed tick rate from whatever host clock calls
// it. It only ever runs whole ticks.
type Driver struct {
	Session *Session
	Step    time.Duration
	// MaxTicks bounds the ticks run by one Advance. Backlog beyond it is
	// dropped so a stalled host cannot trigger a burst of catch-up frames.
	// 0 means unbounded.
	MaxTicks int

	acc time.Duration
}

func NewDriver(s *Session, tps int) *Driver {
	if tps <= 0 {
		tps = 60
	}
	return &Driver{
		Session:  s,
		Step:     time.Second / time.Duration(tps),
		MaxTicks: defaultMaxTicks,
	}
}

// Advance adds dt of host time and runs as many ticks as fit. It returns
// the number of ticks run.
func (d *Driver) Advance(dt time.Duration, in Input) int {
	if dt <= 0 || d.Step <= 0 {
		return 0
	}
	d.acc += dt
	n := 0
	for d.acc >= d.Step {
		if d.MaxTicks > 0 && n >= d.MaxTicks {
			d.acc = 0
			break
		}
		d.Session.Tick(in)
		d.acc -= d.Step
		n++
	}
	return n
}

// Pending is the host time carried over to the next Advance.
func (d *Driver) Pending() time.Duration {
	return d.acc
}
