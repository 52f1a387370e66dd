package term

import (
	"sync"

	"snake/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Input turns terminal key events into commands. A goroutine blocks on
// PollEvent and hands events to Poll through a buffered channel, so Poll
// itself never blocks.
type Input struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	once    sync.Once
	resized bool
}

var (
	_ core.InputSource = (*Input)(nil)
	_ core.Repainter   = (*Input)(nil)
)

// NewInput starts reading events from screen.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go in.pump()
	return in
}

func (in *Input) pump() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Poll returns the commands for every key pressed since the last call.
func (in *Input) Poll() []core.Command {
	var cmds []core.Command
	for {
		select {
		case ev := <-in.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd, ok := commandFor(ev.Key(), ev.Rune()); ok {
					cmds = append(cmds, cmd)
				}
			case *tcell.EventResize:
				in.screen.Sync()
				in.resized = true
			}
		default:
			return cmds
		}
	}
}

// Close stops handing events to Poll. The pump goroutine exits once the
// screen is finalized.
func (in *Input) Close() {
	in.once.Do(func() { close(in.done) })
}

// NeedsRepaint reports whether the terminal was resized since the last call.
// A resize can drop cells that incremental drawing never touches again.
func (in *Input) NeedsRepaint() bool {
	r := in.resized
	in.resized = false
	return r
}

func commandFor(key tcell.Key, r rune) (core.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return core.MoveUp, true
	case tcell.KeyDown:
		return core.MoveDown, true
	case tcell.KeyLeft:
		return core.MoveLeft, true
	case tcell.KeyRight:
		return core.MoveRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.Quit, true
	case tcell.KeyRune:
		switch r {
		case '+', '=':
			return core.SpeedUp, true
		case '-':
			return core.SpeedDown, true
		case 'q', 'Q':
			return core.Quit, true
		}
	}
	return 0, false
}
