package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snake/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	speed int
	board core.Board
	ticks int
}

var lastRun recordedRun

func init() {
	core.RegisterFrontend("headless-test", func(ctx context.Context, sim core.Sim, opts core.FrontendOptions) error {
		lastRun = recordedRun{speed: sim.Speed(), board: sim.Board()}
		for i := 0; i < 5; i++ {
			if sim.Tick(nil).Quit {
				break
			}
			lastRun.ticks++
		}
		return nil
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRejectsInvalidSpeed(t *testing.T) {
	_, err := execute(t, "--frontend", "headless-test", "--speed", "0", "--sound=false")
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestRejectsUnknownFrontend(t *testing.T) {
	_, err := execute(t, "--frontend", "nope", "--sound=false")
	assert.ErrorIs(t, err, core.ErrUnknownFrontend)
}

func TestRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "--frontend", "headless-test", "--log-level", "loud", "--sound=false")
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestRunsRegisteredFrontend(t *testing.T) {
	out, err := execute(t, "--frontend", "headless-test", "--speed", "7", "--seed", "3", "--sound=false")
	require.NoError(t, err)

	assert.Equal(t, 7, lastRun.speed)
	assert.Equal(t, 32, lastRun.board.Grid.W)
	assert.Equal(t, 24, lastRun.board.Grid.H)
	assert.Equal(t, 5, lastRun.ticks)
	assert.Contains(t, out, "session=")
	assert.Contains(t, out, "frontend=headless-test")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	out, err := execute(t, "--frontend", "headless-test", "--sound=false", "--log-file", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "msg=starting"), string(data))
}

func TestTermFrontendDiscardsLogsWithoutFile(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Frontend = "term"
	var buf bytes.Buffer
	logger, closeFn, err := newLogger(cfg, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	assert.Empty(t, buf.String())
}
