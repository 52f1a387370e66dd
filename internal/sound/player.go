package sound

import (
	"log/slog"

	"snake/internal/core"

	"github.com/gopxl/beep"
)

// Player maps tick outcomes to cues and hands them to a play function.
type Player struct {
	play   func(beep.Streamer)
	volume float64
	logger *slog.Logger
}

var _ core.Listener = (*Player)(nil)

// NewPlayer returns a player that passes cues to play.
func NewPlayer(play func(beep.Streamer), vol float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{play: play, volume: vol, logger: logger}
}

// CueFor picks the cue for an outcome. A board-full win takes precedence
// over the apple that caused it.
func CueFor(o core.Outcome) (Cue, bool) {
	switch {
	case o.BoardFull:
		return CueWin, true
	case o.Collided:
		return CueCrash, true
	case o.AteApple:
		return CueApple, true
	}
	return 0, false
}

// OnTick plays the cue for o, if any.
func (p *Player) OnTick(o core.Outcome) {
	if p == nil || p.play == nil {
		return
	}
	cue, ok := CueFor(o)
	if !ok {
		return
	}
	p.logger.Debug("sound cue", slog.String("cue", cue.String()))
	p.play(Stream(cue, p.volume))
}
