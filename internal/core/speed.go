package core

import "time"

// Speed is a ticks-per-second setting bounded by [Min, Max].
type Speed struct {
	tps, min, max int
}

// NewSpeed returns a Speed clamped to its bounds. A minimum below one is
// raised to one and a maximum below the minimum is raised to it.
func NewSpeed(tps, min, max int) Speed {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	s := Speed{min: min, max: max}
	s.set(tps)
	return s
}

func (s *Speed) set(tps int) {
	switch {
	case tps < s.min:
		tps = s.min
	case tps > s.max:
		tps = s.max
	}
	s.tps = tps
}

// TPS returns the current ticks per second.
func (s Speed) TPS() int { return s.tps }

// Min returns the lower bound.
func (s Speed) Min() int { return s.min }

// Max returns the upper bound.
func (s Speed) Max() int { return s.max }

// Up raises the speed by one and reports whether it changed.
func (s *Speed) Up() bool {
	old := s.tps
	s.set(s.tps + 1)
	return s.tps != old
}

// Down lowers the speed by one and reports whether it changed.
func (s *Speed) Down() bool {
	old := s.tps
	s.set(s.tps - 1)
	return s.tps != old
}

// Interval returns the duration of one tick.
func (s Speed) Interval() time.Duration { return time.Second / time.Duration(s.tps) }
