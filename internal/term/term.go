// Package term runs the game in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"log/slog"

	"snake/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Name is the frontend's registry key.
const Name = "term"

func init() {
	core.RegisterFrontend(Name, Run)
}

// Run opens the terminal, plays until the player quits or ctx is cancelled,
// and restores the terminal.
func Run(ctx context.Context, sim core.Sim, opts core.FrontendOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	return Play(ctx, screen, sim, opts.Logger)
}

// Play drives sim on an initialised screen. The caller owns the screen and
// must finalize it; the input goroutine exits when it does.
func Play(ctx context.Context, screen tcell.Screen, sim core.Sim, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	grid := sim.Board().Grid
	if w, h := screen.Size(); w < grid.W*cellWidth || h < grid.H+boardTop {
		logger.Warn("terminal smaller than board",
			slog.Int("cols", w), slog.Int("rows", h),
			slog.Int("need_cols", grid.W*cellWidth), slog.Int("need_rows", grid.H+boardTop))
	}
	screen.HideCursor()
	screen.Clear()

	view := NewView(screen, grid)
	in := NewInput(screen)
	defer in.Close()

	logger.Debug("terminal frontend started")
	return core.Run(ctx, sim, in, view, view)
}
