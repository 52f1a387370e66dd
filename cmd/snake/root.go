package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/game"
	"snake/internal/sound"
	"snake/internal/term"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const soundVolume = 0.4

func newRootCmd() *cobra.Command {
	cfg := core.DefaultConfig()
	if app.Available {
		cfg.Frontend = app.Name
	}

	cmd := &cobra.Command{
		Use:   "snake",
		Short: "Classic snake on a wrapping board",
		Long: `snake steers a snake around a 32x24 board whose edges wrap.

Arrow keys steer, + and - change speed, q or Esc quits. Eating an apple grows
the snake by one; running into yourself starts a new round.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, cmd.ErrOrStderr())
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg core.Config, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	frontend, err := core.LookupFrontend(cfg.Frontend)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := cfg.Board()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := game.Options{
		Board:   board,
		Speed:   cfg.SpeedSetting(),
		Palette: cfg.Palette,
		Random:  core.NewRNG(seed),
		Logger:  logger,
	}
	if cfg.Sound {
		player, err := sound.NewSpeakerPlayer(soundVolume, logger)
		if err != nil {
			logger.Warn("sound disabled", slog.Any("err", err))
		} else {
			defer sound.Close()
			opts.Listener = player
		}
	}

	g, err := game.New(opts)
	if err != nil {
		return err
	}
	logger.Info("starting", slog.String("frontend", cfg.Frontend), slog.Int64("seed", seed))

	if err := frontend(ctx, g, core.FrontendOptions{Config: cfg, Logger: logger}); err != nil {
		return err
	}
	logger.Info("finished", slog.Int("high_score", g.Score().High))
	return nil
}

// newLogger builds the process logger. The terminal frontend owns the
// screen, so without a log file its logs are discarded.
func newLogger(cfg core.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	var (
		out     io.Writer = stderr
		closeFn           = func() {}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case cfg.Frontend == term.Name:
		return slog.New(slog.DiscardHandler), closeFn, nil
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("session", uuid.NewString()))
	return logger, closeFn, nil
}
