package core

import (
	"context"
	"time"
)

// Run drives sim from a ticker paced at the sim's current speed. Input is
// polled once per tick. When in is a Repainter that asks for it, the board
// and caption are repainted in full. Run returns nil when the player quits or
// ctx is cancelled.
func Run(ctx context.Context, sim Sim, in InputSource, out Renderer, caption Caption) error {
	sim.Draw(out)
	caption.SetCaption(sim.Score().High, sim.Speed())

	interval := sim.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		cmds := in.Poll()
		repaint := false
		if r, ok := in.(Repainter); ok && r.NeedsRepaint() {
			sim.Invalidate()
			repaint = true
		}

		res := sim.Tick(cmds)
		if res.Quit {
			return nil
		}
		if res.SpeedChanged {
			interval = sim.TickInterval()
			ticker.Reset(interval)
		}
		sim.Draw(out)
		switch {
		case res.CaptionChanged():
			caption.SetCaption(res.Score.High, sim.Speed())
		case repaint:
			caption.SetCaption(sim.Score().High, sim.Speed())
		}
	}
}
