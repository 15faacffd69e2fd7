// Package synth generates short procedural sound effects as beep streamers.
//
// A Tone is one oscillator whose frequency sweeps linearly from FreqStart
// to FreqEnd while its volume moves from VolStart to VolEnd along an easing
// curve. The wave can be blended with white noise.
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/fogleman/ease"
	"github.com/gopxl/beep"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate beep.SampleRate = 44100

// Headroom scales every sample so a full-volume tone peaks at half scale.
const Headroom = 0.5

// Wave selects the oscillator shape.
type Wave int

// Wave shapes.
const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

var waveNames = [...]string{"sine", "square", "saw", "noise"}

// String returns the wave name.
func (w Wave) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return fmt.Sprintf("Wave(%d)", int(w))
	}
	return waveNames[w]
}

// ParseWave parses a wave name.
func ParseWave(s string) (Wave, error) {
	for i, name := range waveNames {
		if strings.EqualFold(s, name) {
			return Wave(i), nil
		}
	}
	return 0, fmt.Errorf("synth: unknown wave %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wave) UnmarshalText(text []byte) error {
	v, err := ParseWave(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (w Wave) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Curve names an easing function for the volume envelope.
// The empty curve is linear.
type Curve string

var curves = map[Curve]func(float64) float64{
	"":            ease.Linear,
	"linear":      ease.Linear,
	"in_quad":     ease.InQuad,
	"out_quad":    ease.OutQuad,
	"in_out_quad": ease.InOutQuad,
	"in_cubic":    ease.InCubic,
	"out_cubic":   ease.OutCubic,
	"in_sine":     ease.InSine,
	"out_sine":    ease.OutSine,
	"in_out_sine": ease.InOutSine,
}

// Func returns the easing function, or nil for an unknown name.
func (c Curve) Func() func(float64) float64 {
	return curves[c]
}

// Tone describes one synthesized sound.
type Tone struct {
	Duration  time.Duration
	FreqStart float64 // Hz
	FreqEnd   float64 // Hz
	VolStart  float64
	VolEnd    float64
	Wave      Wave
	NoiseMix  float64 // 0 = pure wave, 1 = pure noise
	Curve     Curve
	Seed      uint64 // noise seed
}

// Validate reports settings that cannot be rendered.
func (t Tone) Validate() error {
	switch {
	case t.Duration < 0:
		return fmt.Errorf("synth: negative duration %v", t.Duration)
	case t.NoiseMix < 0 || t.NoiseMix > 1:
		return fmt.Errorf("synth: noise mix %v outside [0, 1]", t.NoiseMix)
	case t.Wave < WaveSine || t.Wave > WaveNoise:
		return fmt.Errorf("synth: unknown wave %d", int(t.Wave))
	case t.Curve.Func() == nil:
		return fmt.Errorf("synth: unknown curve %q", t.Curve)
	}
	return nil
}

// Samples returns the number of samples the tone renders to at rate.
func (t Tone) Samples(rate beep.SampleRate) int {
	if t.Duration <= 0 {
		return 0
	}
	return rate.N(t.Duration)
}

// Streamer returns a mono streamer (both channels equal) that plays the
// tone once. Streamers built from equal tones produce equal samples.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	curve := t.Curve.Func()
	if curve == nil {
		curve = ease.Linear
	}
	return &toneStreamer{
		tone:  t,
		rate:  rate,
		total: t.Samples(rate),
		curve: curve,
		rng:   rand.New(rand.NewPCG(t.Seed, uint64(t.Wave))),
	}
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	total    int
	position int
	curve    func(float64) float64
	rng      *rand.Rand
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	d := s.tone.Duration.Seconds()

	for i := range samples {
		if s.position >= s.total {
			return i, true
		}

		t := float64(s.position) / float64(s.rate)
		progress := t / d
		freq := s.tone.FreqStart + (s.tone.FreqEnd-s.tone.FreqStart)*progress
		vol := s.tone.VolStart + (s.tone.VolEnd-s.tone.VolStart)*s.curve(progress)

		val := s.wave(t, freq)
		if mix := s.tone.NoiseMix; mix > 0 {
			val = val*(1-mix) + s.noise()*mix
		}
		val = clamp(val*vol*Headroom, -1, 1)

		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// wave evaluates the oscillator at time t for the instantaneous frequency.
// The phase is freq·t, not the integral of freq over t, so sweeps overshoot
// their end frequency.
func (s *toneStreamer) wave(t, freq float64) float64 {
	switch s.tone.Wave {
	case WaveSquare:
		if math.Sin(2*math.Pi*freq*t) > 0 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t*freq - math.Floor(0.5+t*freq))
	case WaveNoise:
		return s.noise()
	default:
		return math.Sin(2 * math.Pi * freq * t)
	}
}

func (s *toneStreamer) noise() float64 {
	return s.rng.Float64()*2 - 1
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
