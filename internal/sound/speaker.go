//go:build !nosound

package sound

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// NewSpeakerPlayer initialises the audio device and returns a player that
// mixes cues into it.
func NewSpeakerPlayer(vol float64, logger *slog.Logger) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	return NewPlayer(func(s beep.Streamer) { speaker.Play(s) }, vol, logger), nil
}

// Close releases the audio device.
func Close() { speaker.Close() }
