//go:build !ebiten

package ui

import "snake/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// SetScore is a no-op in the headless build.
func (h *HUD) SetScore(core.Score) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
