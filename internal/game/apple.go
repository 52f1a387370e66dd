package game

import "snake/internal/core"

// Apple sits on one free cell and jumps to another when eaten.
type Apple struct {
	grid   core.Grid
	rng    core.Random
	pos    core.Cell
	placed bool
}

// NewApple returns an apple that has not been placed yet.
func NewApple(g core.Grid, rng core.Random) *Apple {
	return &Apple{grid: g, rng: rng}
}

// Relocate moves the apple to a uniformly random cell not in occupied. It
// returns core.ErrBoardFull and keeps its position when no cell is free.
func (a *Apple) Relocate(occupied []core.Cell) error {
	free := a.grid.FreeCells(occupied)
	if len(free) == 0 {
		return core.ErrBoardFull
	}
	a.pos = free[a.rng.IntN(len(free))]
	a.placed = true
	return nil
}

// Position returns the apple cell. Reading it before the first Relocate is a
// programming error.
func (a *Apple) Position() core.Cell {
	if !a.placed {
		panic("game: apple read before placement")
	}
	return a.pos
}
