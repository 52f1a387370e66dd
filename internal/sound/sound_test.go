package sound

import (
	"testing"

	"snake/internal/core"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain pulls every sample from s and returns the count and the peak
// absolute value.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestCueLengths(t *testing.T) {
	for _, cue := range []Cue{CueApple, CueCrash, CueWin} {
		t.Run(cue.String(), func(t *testing.T) {
			n, peak := drain(t, Stream(cue, 1))
			want := SampleRate.N(Duration(cue))
			assert.InDelta(t, want, n, 8)
			assert.Greater(t, peak, 0.1)
			assert.LessOrEqual(t, peak, 1.0+1e-9)
		})
	}
}

func TestSilentCue(t *testing.T) {
	n, peak := drain(t, Stream(CueApple, 0))
	assert.Equal(t, SampleRate.N(Duration(CueApple)), n)
	assert.Zero(t, peak)
}

func TestUnknownCue(t *testing.T) {
	assert.Nil(t, Stream(Cue(42), 1))
	assert.Zero(t, Duration(Cue(42)))
}

func TestCueFor(t *testing.T) {
	cases := []struct {
		name string
		out  core.Outcome
		want Cue
		ok   bool
	}{
		{"nothing", core.Outcome{}, 0, false},
		{"apple", core.Outcome{AteApple: true}, CueApple, true},
		{"crash", core.Outcome{Collided: true}, CueCrash, true},
		{"win", core.Outcome{AteApple: true, BoardFull: true}, CueWin, true},
		{"speed only", core.Outcome{SpeedChanged: true}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CueFor(tc.out)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestPlayerOnTick(t *testing.T) {
	var played []beep.Streamer
	p := NewPlayer(func(s beep.Streamer) { played = append(played, s) }, 0.5, nil)

	p.OnTick(core.Outcome{})
	p.OnTick(core.Outcome{AteApple: true})
	p.OnTick(core.Outcome{Collided: true})

	require.Len(t, played, 2)
	n, _ := drain(t, played[0])
	assert.Equal(t, SampleRate.N(Duration(CueApple)), n)
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() { p.OnTick(core.Outcome{AteApple: true}) })
}
