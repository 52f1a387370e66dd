// Package sound synthesizes short cues for game events.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueApple Cue = iota
	CueCrash
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueApple:
		return "apple"
	case CueCrash:
		return "crash"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

const (
	appleDuration = 80 * time.Millisecond
	crashDuration = 350 * time.Millisecond
	noteDuration  = 120 * time.Millisecond
	noteGap       = 20 * time.Millisecond
	release       = 30 * time.Millisecond
)

// tone is a sine sweep from start to end Hz over a fixed number of samples.
type tone struct {
	start, end float64
	phase      float64
	pos, total int
	rate       beep.SampleRate
}

func newTone(start, end float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{start: start, end: end, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	relSamples := t.rate.N(release)
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.start + (t.end-t.start)*progress
		val := math.Sin(2 * math.Pi * t.phase)
		if left := t.total - t.pos; left < relSamples {
			val *= float64(left) / float64(relSamples)
		}
		samples[i][0] = val
		samples[i][1] = val
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// chord plays several fixed frequencies at equal weight.
type chord struct {
	tones []*tone
	buf   [][2]float64
}

func newChord(freqs []float64, d time.Duration, rate beep.SampleRate) *chord {
	c := &chord{}
	for _, f := range freqs {
		c.tones = append(c.tones, newTone(f, f, d, rate))
	}
	return c
}

func (c *chord) Stream(samples [][2]float64) (int, bool) {
	if len(c.buf) < len(samples) {
		c.buf = make([][2]float64, len(samples))
	}
	for i := range samples {
		samples[i] = [2]float64{}
	}
	weight := 1 / float64(len(c.tones))
	longest, alive := 0, false
	for _, t := range c.tones {
		n, ok := t.Stream(c.buf[:len(samples)])
		for i := 0; i < n; i++ {
			samples[i][0] += c.buf[i][0] * weight
			samples[i][1] += c.buf[i][1] * weight
		}
		if n > longest {
			longest = n
		}
		alive = alive || ok
	}
	return longest, alive
}

func (c *chord) Err() error { return nil }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Stream builds a fresh streamer for cue at the given volume in [0, 1]. The
// streamer ends after the cue has played.
func Stream(cue Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueApple:
		s = newTone(880, 1320, appleDuration, SampleRate)
	case CueCrash:
		s = newTone(440, 110, crashDuration, SampleRate)
	case CueWin:
		notes := []float64{523.25, 659.25, 783.99}
		seq := make([]beep.Streamer, 0, 2*len(notes))
		for _, f := range notes {
			seq = append(seq, newTone(f, f, noteDuration, SampleRate), generators.Silence(SampleRate.N(noteGap)))
		}
		seq = append(seq, newChord([]float64{notes[0], notes[2]}, 2*noteDuration, SampleRate))
		s = beep.Seq(seq...)
	default:
		return nil
	}
	return volume(s, vol)
}

// Duration returns how long cue plays for.
func Duration(cue Cue) time.Duration {
	switch cue {
	case CueApple:
		return appleDuration
	case CueCrash:
		return crashDuration
	case CueWin:
		return 3*(noteDuration+noteGap) + 2*noteDuration
	default:
		return 0
	}
}
