package core

import "fmt"

// Cell identifies one grid square by its column and row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Grid describes a toroidal board measured in cells.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions. Non-positive dimensions
// are a programming error.
func NewGrid(w, h int) Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return Grid{W: w, H: h}
}

// Area returns the number of cells on the board.
func (g Grid) Area() int { return g.W * g.H }

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Center returns the cell the snake starts from.
func (g Grid) Center() Cell { return Cell{X: g.W / 2, Y: g.H / 2} }

// Index returns the row-major index for c.
func (g Grid) Index(c Cell) int { return c.Y*g.W + c.X }

// Wrap moves c one step in direction d, applying toroidal wrapping.
func (g Grid) Wrap(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	x := ((c.X+dx)%g.W + g.W) % g.W
	y := ((c.Y+dy)%g.H + g.H) % g.H
	return Cell{X: x, Y: y}
}

// AllCells lists every cell in row-major order.
func (g Grid) AllCells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// FreeCells returns AllCells minus occupied, in row-major order. Occupied
// cells outside the board are ignored. When every cell is taken the result
// is empty; callers decide what a full board means.
func (g Grid) FreeCells(occupied []Cell) []Cell {
	mask := NewMask(g)
	for _, c := range occupied {
		mask.Set(c)
	}
	free := make([]Cell, 0, g.Area()-mask.Count())
	for i, v := range mask.Cells() {
		if v == 0 {
			free = append(free, Cell{X: i % g.W, Y: i / g.W})
		}
	}
	return free
}

// Mask stores one occupancy byte per cell in row-major order.
type Mask struct {
	grid  Grid
	data  []uint8
	count int
}

// NewMask allocates an empty mask covering g.
func NewMask(g Grid) *Mask {
	return &Mask{grid: g, data: make([]uint8, g.Area())}
}

// Cells exposes the backing slice.
func (m *Mask) Cells() []uint8 { return m.data }

// Set marks c as occupied. Cells outside the board are ignored.
func (m *Mask) Set(c Cell) {
	if !m.grid.Contains(c) {
		return
	}
	i := m.grid.Index(c)
	if m.data[i] == 0 {
		m.data[i] = 1
		m.count++
	}
}

// Has reports whether c is occupied.
func (m *Mask) Has(c Cell) bool {
	return m.grid.Contains(c) && m.data[m.grid.Index(c)] != 0
}

// Count returns the number of occupied cells.
func (m *Mask) Count() int { return m.count }
