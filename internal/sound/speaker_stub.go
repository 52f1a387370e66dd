//go:build nosound

package sound

import (
	"errors"
	"log/slog"
)

// NewSpeakerPlayer reports that audio support was not compiled in.
func NewSpeakerPlayer(float64, *slog.Logger) (*Player, error) {
	return nil, errors.New("sound: built with the nosound tag")
}

// Close is a no-op without audio support.
func Close() {}
