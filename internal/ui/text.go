package ui

import (
	"fmt"

	"snake/internal/core"
)

const (
	panelPadding = 6
	panelMargin  = 4
	lineHeight   = 15
	panelWidth   = 90
)

// PanelHeight returns the panel height for n lines of text.
func PanelHeight(n int) int { return 2*panelPadding + n*lineHeight }

// PanelOrigin places a w x h panel in the bottom-right corner of the screen,
// inset by a small margin. The panel never starts left of or above the
// screen origin.
func PanelOrigin(screenW, screenH, w, h int) (int, int) {
	x := screenW - w - panelMargin
	y := screenH - h - panelMargin
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// ScoreLines formats the in-window score panel.
func ScoreLines(s core.Score) []string {
	return []string{
		fmt.Sprintf("Length %d", s.Length),
		fmt.Sprintf("Apples %d", s.Apples),
		fmt.Sprintf("Best   %d", s.High),
	}
}
