package term

import (
	"image/color"

	"snake/internal/core"

	"github.com/gdamore/tcell/v2"
)

// boardTop is the first terminal row used by the board; row 0 holds the
// caption.
const boardTop = 1

// cellWidth is the number of terminal columns per board cell. Terminal
// glyphs are roughly twice as tall as they are wide.
const cellWidth = 2

// View draws the board and caption onto a tcell screen.
type View struct {
	screen tcell.Screen
	grid   core.Grid
}

var (
	_ core.Renderer = (*View)(nil)
	_ core.Caption  = (*View)(nil)
)

// NewView returns a view drawing grid onto screen.
func NewView(screen tcell.Screen, grid core.Grid) *View {
	return &View{screen: screen, grid: grid}
}

// Clear fills the board area with c.
func (v *View) Clear(c color.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	for y := 0; y < v.grid.H; y++ {
		for x := 0; x < v.grid.W*cellWidth; x++ {
			v.screen.SetContent(x, boardTop+y, ' ', nil, style)
		}
	}
}

// DrawCell paints one board cell.
func (v *View) DrawCell(cell core.Cell, c color.Color) {
	if !v.grid.Contains(cell) {
		return
	}
	style := tcell.StyleDefault.Background(toTcell(c))
	col := cell.X * cellWidth
	for i := 0; i < cellWidth; i++ {
		v.screen.SetContent(col+i, boardTop+cell.Y, ' ', nil, style)
	}
}

// Present flushes pending changes to the terminal.
func (v *View) Present() { v.screen.Show() }

// SetCaption rewrites the caption row.
func (v *View) SetCaption(highScore, speed int) {
	text := []rune(core.CaptionText(highScore, speed))
	width := v.grid.W * cellWidth
	if w, _ := v.screen.Size(); w > width {
		width = w
	}
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		v.screen.SetContent(x, 0, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
