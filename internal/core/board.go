package core

import "fmt"

// Board couples the cell grid with the pixel size of one cell.
type Board struct {
	Grid     Grid
	CellSize int
}

// NewBoard derives the grid from a screen size in pixels. The screen must be
// an exact multiple of the cell size and hold at least two cells.
func NewBoard(screenW, screenH, cellSize int) (Board, error) {
	if cellSize <= 0 {
		return Board{}, fmt.Errorf("%w: cell size %d", ErrInvalidConfig, cellSize)
	}
	if screenW <= 0 || screenH <= 0 {
		return Board{}, fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, screenW, screenH)
	}
	if screenW%cellSize != 0 || screenH%cellSize != 0 {
		return Board{}, fmt.Errorf("%w: screen %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, screenW, screenH, cellSize)
	}
	g := NewGrid(screenW/cellSize, screenH/cellSize)
	if g.Area() < 2 {
		return Board{}, fmt.Errorf("%w: board needs at least two cells", ErrInvalidConfig)
	}
	return Board{Grid: g, CellSize: cellSize}, nil
}

// Pixel returns the top-left pixel of c.
func (b Board) Pixel(c Cell) (int, int) { return c.X * b.CellSize, c.Y * b.CellSize }

// ScreenSize returns the board size in pixels.
func (b Board) ScreenSize() (int, int) { return b.Grid.W * b.CellSize, b.Grid.H * b.CellSize }
