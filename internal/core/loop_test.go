package core

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSim struct {
	ticks       int
	invalidated int
	quitAt      int
	speed       int
	draws       int
	commands    [][]Command
}

func (s *fakeSim) Board() Board { return Board{Grid: NewGrid(4, 4), CellSize: 1} }

func (s *fakeSim) Tick(cmds []Command) Outcome {
	s.ticks++
	s.commands = append(s.commands, cmds)
	out := Outcome{Score: Score{High: s.ticks}}
	if s.ticks == 2 {
		s.speed = 500
		out.SpeedChanged = true
	}
	if s.ticks == s.quitAt {
		out.Quit = true
	}
	return out
}

func (s *fakeSim) Draw(Renderer) { s.draws++ }
func (s *fakeSim) Invalidate()   { s.invalidated++ }
func (s *fakeSim) Score() Score  { return Score{} }
func (s *fakeSim) Speed() int    { return s.speed }

func (s *fakeSim) TickInterval() time.Duration {
	return time.Second / time.Duration(s.speed)
}

type nopRenderer struct{}

func (nopRenderer) Clear(color.Color)          {}
func (nopRenderer) DrawCell(Cell, color.Color) {}
func (nopRenderer) Present()                   {}

type queueInput struct{ polls int }

func (q *queueInput) Poll() []Command {
	q.polls++
	if q.polls == 1 {
		return []Command{MoveUp}
	}
	return nil
}

// repaintInput asks for a repaint on one chosen poll.
type repaintInput struct {
	queueInput
	repaintAt int
}

func (r *repaintInput) NeedsRepaint() bool { return r.polls == r.repaintAt }

type captionLog struct{ calls [][2]int }

func (c *captionLog) SetCaption(high, speed int) { c.calls = append(c.calls, [2]int{high, speed}) }

func TestRunStopsOnQuit(t *testing.T) {
	sim := &fakeSim{quitAt: 4, speed: 200}
	in := &queueInput{}
	caption := &captionLog{}

	err := Run(context.Background(), sim, in, nopRenderer{}, caption)
	require.NoError(t, err)

	assert.Equal(t, 4, sim.ticks)
	assert.Equal(t, 4, in.polls, "input is polled once per tick")
	assert.Equal(t, []Command{MoveUp}, sim.commands[0])
	assert.Equal(t, 4, sim.draws, "initial draw plus one per non-quit tick")
	assert.Equal(t, [][2]int{{0, 200}, {2, 500}}, caption.calls)
}

func TestRunRepaintsWhenInputAsks(t *testing.T) {
	sim := &fakeSim{quitAt: 4, speed: 200}
	in := &repaintInput{repaintAt: 3}
	caption := &captionLog{}

	require.NoError(t, Run(context.Background(), sim, in, nopRenderer{}, caption))

	assert.Equal(t, 1, sim.invalidated)
	assert.Equal(t, [][2]int{{0, 200}, {2, 500}, {0, 500}}, caption.calls,
		"a repaint re-issues the caption even when nothing changed")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim := &fakeSim{speed: 1}
	err := Run(ctx, sim, &queueInput{}, nopRenderer{}, &captionLog{})
	require.NoError(t, err)
	assert.Zero(t, sim.ticks)
}

func TestFrontendRegistry(t *testing.T) {
	called := false
	RegisterFrontend("test-frontend", func(context.Context, Sim, FrontendOptions) error {
		called = true
		return nil
	})
	RegisterFrontend("", nil)

	f, err := LookupFrontend("test-frontend")
	require.NoError(t, err)
	require.NoError(t, f(context.Background(), &fakeSim{speed: 1}, FrontendOptions{}))
	assert.True(t, called)
	assert.Contains(t, FrontendNames(), "test-frontend")

	_, err = LookupFrontend("missing")
	assert.True(t, errors.Is(err, ErrUnknownFrontend))
}

func TestCaptionText(t *testing.T) {
	assert.Equal(t, "Snake | high score: 7 | speed: 12", CaptionText(7, 12))
}
