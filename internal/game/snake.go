package game

import "snake/internal/core"

// collisionNeck is the number of leading segments skipped by the self
// collision test. A head cannot reach any of them on this grid.
const collisionNeck = 4

// Snake holds the body segments head-first, the heading and the length the
// body grows toward.
type Snake struct {
	grid     core.Grid
	segments []core.Cell
	heading  core.Direction
	pending  core.Direction
	target   int

	vacated    core.Cell
	hasVacated bool
}

// NewSnake returns a snake in its reset state on g.
func NewSnake(g core.Grid) *Snake {
	s := &Snake{grid: g}
	s.Reset()
	return s
}

// Reset puts the snake back to a single segment at the board center heading
// right.
func (s *Snake) Reset() {
	s.segments = []core.Cell{s.grid.Center()}
	s.heading = core.Right
	s.pending = core.NoDirection
	s.target = 1
	s.vacated = core.Cell{}
	s.hasVacated = false
}

// Head returns the first segment.
func (s *Snake) Head() core.Cell { return s.segments[0] }

// Segments exposes the body head-first. Callers must not modify it.
func (s *Snake) Segments() []core.Cell { return s.segments }

// Len returns the number of segments currently on the board.
func (s *Snake) Len() int { return len(s.segments) }

// Heading returns the direction of the next move.
func (s *Snake) Heading() core.Direction { return s.heading }

// Pending returns the requested heading not yet applied.
func (s *Snake) Pending() core.Direction { return s.pending }

// TargetLength returns the length the snake grows toward.
func (s *Snake) TargetLength() int { return s.target }

// LastVacated returns the tail cell dropped by the last Advance, if any.
func (s *Snake) LastVacated() (core.Cell, bool) { return s.vacated, s.hasVacated }

// RequestDirection records d for the next Advance unless it reverses the
// current heading. The last accepted request wins.
func (s *Snake) RequestDirection(d core.Direction) {
	if d == core.NoDirection || d == s.heading.Opposite() {
		return
	}
	s.pending = d
}

// Advance applies the pending heading and moves one cell, dropping the tail
// when the body is longer than the target length.
func (s *Snake) Advance() {
	if s.pending != core.NoDirection && s.pending != s.heading.Opposite() {
		s.heading = s.pending
	}
	s.pending = core.NoDirection

	head := s.grid.Wrap(s.Head(), s.heading)
	s.segments = append(s.segments, core.Cell{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = head

	if last := len(s.segments) - 1; len(s.segments) > s.target {
		s.vacated = s.segments[last]
		s.hasVacated = true
		s.segments = s.segments[:last]
		return
	}
	s.hasVacated = false
}

// Grow raises the target length by one. The body catches up on the
// following moves.
func (s *Snake) Grow() { s.target++ }

// HasSelfCollision reports whether the head overlaps the body past the neck.
// Snakes with a target length of four or less never collide.
func (s *Snake) HasSelfCollision() bool {
	if s.target <= collisionNeck || len(s.segments) <= collisionNeck {
		return false
	}
	head := s.segments[0]
	for _, c := range s.segments[collisionNeck:] {
		if c == head {
			return true
		}
	}
	return false
}
