// Package audio plays short synthesized effects for reel events.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound identifies an effect.
type Sound int

const (
	SoundTick Sound = iota // Reel advanced
	SoundSpin              // Spin started
	SoundWin
	SoundLose
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundTick:
		return "tick"
	case SoundSpin:
		return "spin"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// note is one tone of an effect; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var melodies = map[Sound][]note{
	SoundTick: {{1200, 15 * time.Millisecond}},
	SoundSpin: {{660, 60 * time.Millisecond}, {880, 60 * time.Millisecond}},
	SoundWin: {
		{523.25, 90 * time.Millisecond},
		{659.25, 90 * time.Millisecond},
		{783.99, 90 * time.Millisecond},
		{1046.5, 220 * time.Millisecond},
	},
	SoundLose: {
		{392, 120 * time.Millisecond},
		{0, 30 * time.Millisecond},
		{311.13, 120 * time.Millisecond},
		{261.63, 260 * time.Millisecond},
	},
}

// Duration returns the length of an effect.
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, n := range melodies[s] {
		d += n.dur
	}
	return d
}

// Tone returns a sine tone of fixed length.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	if freq == 0 {
		return beep.Silence(rate.N(d)), nil
	}
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0fHz: %w", freq, err)
	}
	return beep.Take(rate.N(d), sine), nil
}

// Effect builds the streamer for s at the given volume exponent.
func Effect(s Sound, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := melodies[s]
	if !ok {
		return nil, fmt.Errorf("audio: unknown sound %d", s)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		t, err := Tone(rate, n.freq, n.dur)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}
