package game

import (
	"fmt"
	"log/slog"
	"time"

	"snake/internal/core"
)

// Options configures a Game.
type Options struct {
	Board    core.Board
	Speed    core.Speed
	Palette  core.Palette
	Random   core.Random
	Logger   *slog.Logger
	Listener core.Listener
}

// Game owns the snake, the apple and the scoreboard and advances them one
// tick at a time. It is not safe for concurrent use.
type Game struct {
	board   core.Board
	palette core.Palette
	snake   *Snake
	apple   *Apple
	speed   core.Speed

	high   int
	apples int
	quit   bool

	fullRedraw bool

	logger   *slog.Logger
	listener core.Listener
}

var _ core.Sim = (*Game)(nil)

// New constructs a game with a fresh snake and a placed apple.
func New(opts Options) (*Game, error) {
	if opts.Board.Grid.Area() < 2 {
		return nil, fmt.Errorf("%w: board needs at least two cells", core.ErrInvalidConfig)
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("%w: no random source", core.ErrInvalidConfig)
	}
	if opts.Speed.TPS() == 0 {
		opts.Speed = core.NewSpeed(10, 1, 20)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		board:      opts.Board,
		palette:    opts.Palette,
		snake:      NewSnake(opts.Board.Grid),
		apple:      NewApple(opts.Board.Grid, opts.Random),
		speed:      opts.Speed,
		fullRedraw: true,
		logger:     logger,
		listener:   opts.Listener,
	}
	if err := g.apple.Relocate(g.snake.Segments()); err != nil {
		return nil, fmt.Errorf("place first apple: %w", err)
	}
	g.logger.Info("game started",
		slog.Int("width", opts.Board.Grid.W),
		slog.Int("height", opts.Board.Grid.H),
		slog.Int("speed", g.speed.TPS()),
		slog.Any("apple", g.apple.Position()))
	return g, nil
}

// Board returns the board geometry.
func (g *Game) Board() core.Board { return g.board }

// Snake exposes the snake.
func (g *Game) Snake() *Snake { return g.snake }

// Apple exposes the apple.
func (g *Game) Apple() *Apple { return g.apple }

// Speed returns the current ticks per second.
func (g *Game) Speed() int { return g.speed.TPS() }

// TickInterval returns the duration of one tick at the current speed.
func (g *Game) TickInterval() time.Duration { return g.speed.Interval() }

// Running reports whether the player has not quit.
func (g *Game) Running() bool { return !g.quit }

// Score returns the current scoreboard.
func (g *Game) Score() core.Score {
	return core.Score{Length: g.snake.Len(), High: g.high, Apples: g.apples}
}

// Tick runs one time step: apply commands, move, then resolve apple and
// collision. A quit command ends the game before the snake moves.
func (g *Game) Tick(cmds []core.Command) core.Outcome {
	var out core.Outcome
	if g.quit {
		out.Quit = true
		out.Score = g.Score()
		return out
	}

	for _, cmd := range cmds {
		switch {
		case cmd.IsMove():
			g.snake.RequestDirection(cmd.Direction())
		case cmd == core.SpeedUp:
			if g.speed.Up() {
				out.SpeedChanged = true
			}
		case cmd == core.SpeedDown:
			if g.speed.Down() {
				out.SpeedChanged = true
			}
		case cmd == core.Quit:
			g.quit = true
		}
	}
	if out.SpeedChanged {
		g.logger.Debug("speed changed", slog.Int("speed", g.speed.TPS()))
	}
	if g.quit {
		g.logger.Info("player quit", slog.Int("high_score", g.high))
		out.Quit = true
		out.Score = g.Score()
		return out
	}

	g.snake.Advance()

	if g.snake.Head() == g.apple.Position() {
		g.snake.Grow()
		g.apples++
		out.AteApple = true
		g.logger.Debug("apple eaten",
			slog.Any("at", g.snake.Head()),
			slog.Int("target_length", g.snake.TargetLength()))
		if err := g.apple.Relocate(g.snake.Segments()); err != nil {
			out.BoardFull = true
			g.logger.Info("board full, round won", slog.Int("length", g.snake.TargetLength()))
			g.restart(&out)
		}
	} else if g.snake.HasSelfCollision() {
		out.Collided = true
		g.logger.Info("snake collided with itself",
			slog.Int("length", g.snake.TargetLength()),
			slog.Any("at", g.snake.Head()))
		g.restart(&out)
	}

	out.Score = g.Score()
	if g.listener != nil {
		g.listener.OnTick(out)
	}
	return out
}

// restart records the high score and puts a fresh snake and apple on the
// board.
func (g *Game) restart(out *core.Outcome) {
	if t := g.snake.TargetLength(); t > g.high {
		g.high = t
		out.HighChanged = true
		g.logger.Info("new high score", slog.Int("high_score", g.high))
	}
	g.snake.Reset()
	g.apples = 0
	g.fullRedraw = true
	if err := g.apple.Relocate(g.snake.Segments()); err != nil {
		// New guarantees at least two cells and a reset snake holds one.
		panic(fmt.Sprintf("game: relocate after reset: %v", err))
	}
}

// Invalidate makes the next Draw repaint the whole board.
func (g *Game) Invalidate() { g.fullRedraw = true }

// Draw paints the changes since the previous Draw. The whole board is
// repainted on the first call and after every reset.
func (g *Game) Draw(r core.Renderer) {
	if g.fullRedraw {
		r.Clear(g.palette.Background)
		r.DrawCell(g.apple.Position(), g.palette.Apple)
		for _, c := range g.snake.Segments() {
			r.DrawCell(c, g.palette.Snake)
		}
		r.Present()
		g.fullRedraw = false
		return
	}
	// Erase first: the apple may have landed on the vacated cell.
	if c, ok := g.snake.LastVacated(); ok {
		r.DrawCell(c, g.palette.Background)
	}
	r.DrawCell(g.apple.Position(), g.palette.Apple)
	r.DrawCell(g.snake.Head(), g.palette.Snake)
	r.Present()
}
