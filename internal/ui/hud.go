//go:build ebiten

package ui

import (
	"image/color"

	"snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a small translucent score panel in the bottom-right corner.
type HUD struct {
	lines []string
	panel *ebiten.Image
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// SetScore replaces the displayed score.
func (h *HUD) SetScore(s core.Score) {
	if h == nil {
		return
	}
	h.lines = ScoreLines(s)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	height := PanelHeight(len(h.lines))
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 96})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	b := screen.Bounds()
	x, y := PanelOrigin(b.Dx(), b.Dy(), panelWidth, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.panel, op)
}
