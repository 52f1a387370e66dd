package core

import "image/color"

// Palette holds the colors used to draw the board.
type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Apple      color.RGBA
	Snake      color.RGBA
}

// DefaultPalette returns the classic black board with a red apple and a green
// snake.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Border:     color.RGBA{R: 93, G: 216, B: 228, A: 255},
		Apple:      color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Snake:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
	}
}
