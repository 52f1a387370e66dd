package core

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ScreenW  int
	ScreenH  int
	CellSize int

	Speed    int
	MinSpeed int
	MaxSpeed int

	Seed     int64
	Frontend string
	Sound    bool

	LogLevel string
	LogFile  string

	Palette Palette
}

// DefaultConfig returns a Config populated with the classic settings: a
// 640x480 board of 20 px cells at 10 ticks per second.
func DefaultConfig() Config {
	return Config{
		ScreenW:  640,
		ScreenH:  480,
		CellSize: 20,
		Speed:    10,
		MinSpeed: 1,
		MaxSpeed: 20,
		Frontend: "term",
		Sound:    true,
		LogLevel: "info",
		Palette:  DefaultPalette(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial ticks per second")
	fs.IntVar(&c.MinSpeed, "min-speed", c.MinSpeed, "lowest selectable speed")
	fs.IntVar(&c.MaxSpeed, "max-speed", c.MaxSpeed, "highest selectable speed")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement (0 picks one from the clock)")
	fs.StringVarP(&c.Frontend, "frontend", "f", c.Frontend, "frontend to run")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
}

// Board derives the board geometry.
func (c Config) Board() (Board, error) {
	return NewBoard(c.ScreenW, c.ScreenH, c.CellSize)
}

// SpeedSetting returns the configured speed with its bounds.
func (c Config) SpeedSetting() Speed {
	return NewSpeed(c.Speed, c.MinSpeed, c.MaxSpeed)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if _, err := c.Board(); err != nil {
		return err
	}
	if c.MinSpeed < 1 {
		return fmt.Errorf("%w: min speed %d must be at least 1", ErrInvalidConfig, c.MinSpeed)
	}
	if c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("%w: max speed %d below min speed %d", ErrInvalidConfig, c.MaxSpeed, c.MinSpeed)
	}
	if c.Speed < c.MinSpeed || c.Speed > c.MaxSpeed {
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalidConfig, c.Speed, c.MinSpeed, c.MaxSpeed)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
