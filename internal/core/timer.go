package core

import "time"

// FixedStep helps run game ticks at a steady ticks-per-second rate from a
// frame loop that runs faster than the game.
type FixedStep struct {
	clock       Clock
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepWithClock(tps, SystemClock{})
}

// NewFixedStepWithClock is NewFixedStep with an explicit time source.
func NewFixedStepWithClock(tps int, clock Clock) *FixedStep {
	fs := &FixedStep{clock: clock}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Second / time.Duration(tps)
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Step returns the current tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the game should advance by one tick. At most one
// tick is released per call, and a stalled frame loop earns at most one
// catch-up tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
