package render

import (
	"image/color"

	"snake/internal/core"
)

// Canvas is an RGBA framebuffer that implements core.Renderer. Cells are
// filled with their color and outlined with a one pixel border, except when
// they are painted with the background color.
type Canvas struct {
	board   core.Board
	palette core.Palette

	w, h int
	buf  []byte

	background color.RGBA
	dirty      bool
}

var _ core.Renderer = (*Canvas)(nil)

// NewCanvas allocates a canvas covering the board's pixel area.
func NewCanvas(board core.Board, palette core.Palette) *Canvas {
	w, h := board.ScreenSize()
	return &Canvas{
		board:      board,
		palette:    palette,
		w:          w,
		h:          h,
		buf:        make([]byte, w*h*4),
		background: palette.Background,
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Pixels exposes the backing RGBA buffer, row-major, four bytes per pixel.
func (c *Canvas) Pixels() []byte { return c.buf }

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	base := (y*c.w + x) * 4
	return color.RGBA{R: c.buf[base], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

// Clear paints the whole canvas with col and makes it the background.
func (c *Canvas) Clear(col color.Color) {
	c.background = toRGBA(col)
	fillRect(c.buf, c.w, 0, 0, c.w, c.h, c.background)
}

// DrawCell paints one cell.
func (c *Canvas) DrawCell(cell core.Cell, col color.Color) {
	if !c.board.Grid.Contains(cell) {
		return
	}
	rgba := toRGBA(col)
	x, y := c.board.Pixel(cell)
	size := c.board.CellSize
	if rgba == c.background || size < 3 {
		fillRect(c.buf, c.w, x, y, size, size, rgba)
		return
	}
	fillRect(c.buf, c.w, x, y, size, size, c.palette.Border)
	fillRect(c.buf, c.w, x+1, y+1, size-2, size-2, rgba)
}

// Present marks the canvas as having a new frame.
func (c *Canvas) Present() { c.dirty = true }

// TakeDirty reports whether a frame was presented since the last call and
// resets the flag.
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

func toRGBA(col color.Color) color.RGBA {
	r, g, b, a := col.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fillRect writes col into the w-pixel-wide buffer over the given rectangle.
func fillRect(buf []byte, stride, x, y, w, h int, col color.RGBA) {
	for row := y; row < y+h; row++ {
		base := (row*stride + x) * 4
		for i := 0; i < w; i++ {
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			base += 4
		}
	}
}
