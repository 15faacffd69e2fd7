package synth

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads a streamer to the end in small chunks.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d: channels differ %f/%f", len(out), buf[i][0], buf[i][1])
			}
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	return out
}

// TestToneSampleCount verifies rendering yields floor(rate·duration) samples
func TestToneSampleCount(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     int
	}{
		{150 * time.Millisecond, 6615},
		{100 * time.Millisecond, 4410},
		{1500 * time.Millisecond, 66150},
		{0, 0},
		{10 * time.Microsecond, 0},
	}

	for _, tt := range tests {
		tone := Tone{Duration: tt.duration, FreqStart: 440, FreqEnd: 440, VolStart: 1}
		if got := tone.Samples(SampleRate); got != tt.want {
			t.Errorf("Samples(%v) = %d, want %d", tt.duration, got, tt.want)
		}
		if got := len(drain(t, tone.Streamer(SampleRate))); got != tt.want {
			t.Errorf("streamed %d samples for %v, want %d", got, tt.duration, tt.want)
		}
	}
}

// TestToneRange verifies every wave stays within the headroom
func TestToneRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		tone := Tone{
			Duration:  200 * time.Millisecond,
			FreqStart: 1500,
			FreqEnd:   100,
			VolStart:  1,
			VolEnd:    0,
			Wave:      wave,
			NoiseMix:  0.3,
			Seed:      7,
		}
		for i, v := range drain(t, tone.Streamer(SampleRate)) {
			if v < -Headroom || v > Headroom {
				t.Fatalf("%v sample %d = %f outside [-0.5, 0.5]", wave, i, v)
			}
		}
	}
}

// TestToneSquareLevels verifies a pure square wave only takes the two
// envelope-scaled levels
func TestToneSquareLevels(t *testing.T) {
	tone := Tone{Duration: 50 * time.Millisecond, FreqStart: 220, FreqEnd: 220, VolStart: 0.8, VolEnd: 0.8, Wave: WaveSquare}
	for i, v := range drain(t, tone.Streamer(SampleRate)) {
		if math.Abs(math.Abs(v)-0.4) > 1e-12 {
			t.Fatalf("sample %d = %f, want ±0.4", i, v)
		}
	}
}

// TestToneSine verifies the first samples follow sin(2πft)
func TestToneSine(t *testing.T) {
	tone := Tone{Duration: time.Second, FreqStart: 441, FreqEnd: 441, VolStart: 1, VolEnd: 1}
	samples := drain(t, tone.Streamer(SampleRate))
	for i := 0; i < 200; i++ {
		ts := float64(i) / 44100
		want := math.Sin(2*math.Pi*441*ts) * Headroom
		if math.Abs(samples[i]-want) > 1e-12 {
			t.Fatalf("sample %d = %f, want %f", i, samples[i], want)
		}
	}
}

// TestToneEnvelope verifies linear and eased volume ramps
func TestToneEnvelope(t *testing.T) {
	// A 0.25 Hz square is +1 across the whole second after t = 0.
	peak := func(curve Curve, i int) float64 {
		tone := Tone{Duration: time.Second, FreqStart: 0.25, FreqEnd: 0.25, VolStart: 1, VolEnd: 0, Wave: WaveSquare, Curve: curve}
		samples := drain(t, tone.Streamer(SampleRate))
		return samples[i]
	}

	half := 22050
	if got := peak("linear", half); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("linear at half = %f, want 0.25", got)
	}
	if got := peak("in_quad", half); math.Abs(got-0.375) > 1e-9 {
		t.Errorf("in_quad at half = %f, want 0.375", got)
	}
	if got := peak("out_quad", half); math.Abs(got-0.125) > 1e-9 {
		t.Errorf("out_quad at half = %f, want 0.125", got)
	}
}

// TestToneDeterministic verifies equal seeds give equal noise
func TestToneDeterministic(t *testing.T) {
	tone := Tone{Duration: 100 * time.Millisecond, FreqStart: 800, FreqEnd: 1200, VolStart: 0.5, Wave: WaveNoise, NoiseMix: 0.8, Seed: 42}
	a := drain(t, tone.Streamer(SampleRate))
	b := drain(t, tone.Streamer(SampleRate))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %f vs %f", i, a[i], b[i])
		}
	}

	tone.Seed = 43
	c := drain(t, tone.Streamer(SampleRate))
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestToneValidate(t *testing.T) {
	ok := Tone{Duration: time.Second, NoiseMix: 0.5, Curve: "in_out_quad"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	bad := []Tone{
		{Duration: -time.Second},
		{Duration: time.Second, NoiseMix: 1.5},
		{Duration: time.Second, Wave: Wave(9)},
		{Duration: time.Second, Curve: "wobble"},
	}
	for _, tone := range bad {
		if err := tone.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", tone)
		}
	}
}

func TestParseWave(t *testing.T) {
	for i, name := range []string{"sine", "square", "saw", "noise"} {
		w, err := ParseWave(name)
		if err != nil || w != Wave(i) {
			t.Errorf("ParseWave(%q) = %v, %v", name, w, err)
		}
		if w.String() != name {
			t.Errorf("String() = %q, want %q", w.String(), name)
		}
	}
	if _, err := ParseWave("triangle"); err == nil {
		t.Error("expected error for unknown wave")
	}

	var w Wave
	if err := w.UnmarshalText([]byte("SAW")); err != nil || w != WaveSaw {
		t.Errorf("UnmarshalText(SAW) = %v, %v", w, err)
	}
}
