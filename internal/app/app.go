//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"snake/internal/core"
	"snake/internal/render"
	"snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Available reports whether the GUI frontend was compiled in.
const Available = true

func init() {
	core.RegisterFrontend(Name, Run)
}

var keyCommands = []struct {
	key ebiten.Key
	cmd core.Command
}{
	{ebiten.KeyArrowUp, core.MoveUp},
	{ebiten.KeyArrowDown, core.MoveDown},
	{ebiten.KeyArrowLeft, core.MoveLeft},
	{ebiten.KeyArrowRight, core.MoveRight},
	{ebiten.KeyEqual, core.SpeedUp},
	{ebiten.KeyNumpadAdd, core.SpeedUp},
	{ebiten.KeyMinus, core.SpeedDown},
	{ebiten.KeyNumpadSubtract, core.SpeedDown},
	{ebiten.KeyEscape, core.Quit},
	{ebiten.KeyQ, core.Quit},
}

// Game adapts a core.Sim to the ebiten.Game interface. Ebiten runs Update at
// a fixed 60 TPS; the sim advances only when its own step timer allows.
type Game struct {
	ctx    context.Context
	sim    core.Sim
	canvas *render.Canvas
	image  *ebiten.Image
	hud    *ui.HUD
	keys   CommandBuffer
	step   *core.FixedStep
	logger *slog.Logger

	quit bool
}

// New constructs a Game for the provided simulation.
func New(ctx context.Context, sim core.Sim, palette core.Palette, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w, h := sim.Board().ScreenSize()
	g := &Game{
		ctx:    ctx,
		sim:    sim,
		canvas: render.NewCanvas(sim.Board(), palette),
		image:  ebiten.NewImage(w, h),
		hud:    ui.NewHUD(),
		step:   core.NewFixedStep(sim.Speed()),
		logger: logger,
	}
	sim.Draw(g.canvas)
	g.SetCaption(sim.Score().High, sim.Speed())
	g.hud.SetScore(sim.Score())
	return g
}

// SetCaption puts the high score and speed in the window title.
func (g *Game) SetCaption(highScore, speed int) {
	ebiten.SetWindowTitle(core.CaptionText(highScore, speed))
}

// Update collects input every frame and ticks the sim when a step is due.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.keys.Push(kc.cmd)
		}
	}

	if !g.step.ShouldStep() {
		return nil
	}
	res := g.sim.Tick(g.keys.Poll())
	if res.Quit {
		g.quit = true
		return ebiten.Termination
	}
	if res.SpeedChanged {
		g.step.SetTPS(g.sim.Speed())
	}
	g.sim.Draw(g.canvas)
	g.hud.SetScore(res.Score)
	if res.CaptionChanged() {
		g.SetCaption(res.Score.High, g.sim.Speed())
	}
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas.TakeDirty() {
		g.image.WritePixels(g.canvas.Pixels())
	}
	screen.DrawImage(g.image, nil)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}

// Run opens a window and plays until the player quits, closes the window or
// ctx is cancelled.
func Run(ctx context.Context, sim core.Sim, opts core.FrontendOptions) error {
	g := New(ctx, sim, opts.Config.Palette, opts.Logger)
	w, h := sim.Board().ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("app: run game: %w", err)
	}
	return nil
}
