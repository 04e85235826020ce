package core

import "time"

// maxCatchUp bounds how many ticks a single Advance call may report after a
// stall, so a suspended process does not fast-forward the game.
const maxCatchUp = 5

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance accumulates the time elapsed since the previous call and returns how
// many ticks are due. The first call only records now and reports one tick.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}

// Run steps sim for every tick due at now and returns the number of steps taken.
func (f *FixedStep) Run(now time.Time, sim Sim) int {
	n := f.Advance(now)
	for i := 0; i < n; i++ {
		sim.Step()
	}
	return n
}
