package render

import (
	"testing"

	"snake/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T) (*Canvas, core.Palette) {
	t.Helper()
	board, err := core.NewBoard(640, 480, 20)
	require.NoError(t, err)
	palette := core.DefaultPalette()
	return NewCanvas(board, palette), palette
}

func TestCanvasSize(t *testing.T) {
	c, _ := newTestCanvas(t)
	w, h := c.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Len(t, c.Pixels(), 640*480*4)
}

func TestCanvasClear(t *testing.T) {
	c, p := newTestCanvas(t)
	c.Clear(p.Background)
	assert.Equal(t, p.Background, c.At(0, 0))
	assert.Equal(t, p.Background, c.At(639, 479))
}

func TestCanvasDrawCellWithBorder(t *testing.T) {
	c, p := newTestCanvas(t)
	c.Clear(p.Background)
	c.DrawCell(core.Cell{X: 16, Y: 12}, p.Snake)

	assert.Equal(t, p.Border, c.At(320, 240))
	assert.Equal(t, p.Border, c.At(339, 259))
	assert.Equal(t, p.Snake, c.At(321, 241))
	assert.Equal(t, p.Snake, c.At(338, 258))
	assert.Equal(t, p.Background, c.At(340, 240))
	assert.Equal(t, p.Background, c.At(319, 240))
}

func TestCanvasEraseHasNoBorder(t *testing.T) {
	c, p := newTestCanvas(t)
	c.Clear(p.Background)
	c.DrawCell(core.Cell{X: 0, Y: 0}, p.Apple)
	c.DrawCell(core.Cell{X: 0, Y: 0}, p.Background)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.Equal(t, p.Background, c.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCanvasIgnoresOffBoardCells(t *testing.T) {
	c, p := newTestCanvas(t)
	c.Clear(p.Background)
	c.DrawCell(core.Cell{X: 32, Y: 0}, p.Snake)
	c.DrawCell(core.Cell{X: -1, Y: 3}, p.Snake)
	assert.Equal(t, p.Background, c.At(639, 0))
}

func TestCanvasTakeDirty(t *testing.T) {
	c, _ := newTestCanvas(t)
	assert.False(t, c.TakeDirty())
	c.Present()
	assert.True(t, c.TakeDirty())
	assert.False(t, c.TakeDirty())
}
