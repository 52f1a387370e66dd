package core

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"sort"
	"time"
)

// Renderer draws cells. Cells not touched are expected to keep their last
// drawn color.
type Renderer interface {
	Clear(c color.Color)
	DrawCell(cell Cell, c color.Color)
	Present()
}

// InputSource yields the commands received since the previous poll. Polling
// never blocks and may return nothing.
type InputSource interface {
	Poll() []Command
}

// Repainter is implemented by inputs that learn when the display lost its
// contents, such as after a terminal resize.
type Repainter interface {
	// NeedsRepaint reports whether a full repaint is due and clears the flag.
	NeedsRepaint() bool
}

// Caption displays the high score and current speed.
type Caption interface {
	SetCaption(highScore, speed int)
}

// Listener is notified after every tick.
type Listener interface {
	OnTick(Outcome)
}

// Score is a snapshot of the scoreboard.
type Score struct {
	Length int
	High   int
	Apples int
}

// Outcome reports what happened during one tick.
type Outcome struct {
	AteApple     bool
	Collided     bool
	BoardFull    bool
	SpeedChanged bool
	HighChanged  bool
	Quit         bool
	Score        Score
}

// CaptionChanged reports whether the caption needs refreshing.
func (o Outcome) CaptionChanged() bool { return o.SpeedChanged || o.HighChanged }

// Sim is the contract a frontend drives.
type Sim interface {
	Board() Board
	Tick(cmds []Command) Outcome
	Draw(r Renderer)
	// Invalidate makes the next Draw repaint the whole board.
	Invalidate()
	Score() Score
	Speed() int
	TickInterval() time.Duration
}

// CaptionText formats the caption line shared by all frontends.
func CaptionText(highScore, speed int) string {
	return fmt.Sprintf("Snake | high score: %d | speed: %d", highScore, speed)
}

// FrontendOptions carries process-wide settings into a frontend.
type FrontendOptions struct {
	Config Config
	Logger *slog.Logger
}

// Frontend runs a Sim until the player quits or ctx is cancelled.
type Frontend func(ctx context.Context, sim Sim, opts FrontendOptions) error

var frontends = map[string]Frontend{}

// RegisterFrontend adds a frontend under the provided name.
func RegisterFrontend(name string, f Frontend) {
	if name == "" || f == nil {
		return
	}
	frontends[name] = f
}

// LookupFrontend returns the frontend registered under name.
func LookupFrontend(name string) (Frontend, error) {
	f, ok := frontends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownFrontend, name, FrontendNames())
	}
	return f, nil
}

// FrontendNames lists registered frontends in sorted order.
func FrontendNames() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
