package sfx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haewon/fxkit/internal/synth"
)

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()
	require.Len(t, presets, 15)

	arrow := presets[0]
	assert.Equal(t, "Arrow.wav", arrow.File)
	assert.Equal(t, 150*time.Millisecond, arrow.Duration)
	assert.Equal(t, [2]float64{800, 1200}, arrow.Freq)
	assert.Equal(t, [2]float64{0.5, 0}, arrow.Vol)
	assert.Equal(t, synth.WaveNoise, arrow.Wave)
	assert.InDelta(t, 0.8, arrow.NoiseMix, 1e-12)

	revive := presets[9]
	assert.Equal(t, "hero_revive.wav", revive.File)
	assert.Equal(t, [2]float64{0, 0.8}, revive.Vol, "revive swells in")

	waves := map[synth.Wave]int{}
	for _, p := range presets {
		waves[p.Wave]++
	}
	assert.Equal(t, 4, waves[synth.WaveNoise])
	assert.Equal(t, 4, waves[synth.WaveSine])
	assert.Equal(t, 3, waves[synth.WaveSquare])
	assert.Equal(t, 4, waves[synth.WaveSaw])
}

func TestRenderWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrow.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Render(DefaultPresets()[0], f))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	s, format, err := wav.Decode(in)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Format.SampleRate, format.SampleRate)
	assert.Equal(t, 1, format.NumChannels)
	assert.Equal(t, 2, format.Precision)
	assert.Equal(t, 6615, s.Len())

	buf := make([][2]float64, 1024)
	var total int
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 0.5+1e-4)
			assert.GreaterOrEqual(t, buf[i][0], -0.5-1e-4)
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, 6615, total)

	// 44-byte header plus two bytes per sample.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(44+2*6615), info.Size())
}

func TestParsePresetsValidation(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"empty table", "presets: []", "presets"},
		{"missing file", "presets: [{duration: 1s, freq: [1, 1], vol: [1, 0]}]", "presets[0].file"},
		{"not wav", "presets: [{file: a.mp3, duration: 1s}]", "presets[0].file"},
		{"nested path", "presets: [{file: ../a.wav, duration: 1s}]", "presets[0].file"},
		{"zero duration", "presets: [{file: a.wav}]", "presets[0].duration"},
		{"duplicate", "presets: [{file: a.wav, duration: 1s}, {file: A.wav, duration: 1s}]", "presets[1].file"},
		{"bad mix", "presets: [{file: a.wav, duration: 1s, noise_mix: 2}]", "presets[0]"},
		{"bad curve", "presets: [{file: a.wav, duration: 1s, curve: wobble}]", "presets[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.yaml))
			require.Error(t, err)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	_, err := ParsePresets([]byte("presets: [{file: a.wav, duration: 1s, wave: triangle}]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sfx: parse presets")
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `presets:
  - file: ping.wav
    duration: 50ms
    freq: [1000, 2000]
    vol: [1, 0]
    curve: out_quad
    seed: 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, synth.WaveSine, presets[0].Wave)
	assert.Equal(t, synth.Curve("out_quad"), presets[0].Curve)
	assert.Equal(t, uint64(9), presets[0].Seed)

	_, err = LoadPresets(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio", "sfx")
	presets := []Preset{
		{File: "a.wav", Duration: 20 * time.Millisecond, Freq: [2]float64{440, 440}, Vol: [2]float64{1, 0}},
		{File: "b.wav", Duration: 10 * time.Millisecond, Freq: [2]float64{100, 50}, Vol: [2]float64{1, 0}, Wave: synth.WaveSaw, NoiseMix: 0.3},
	}

	written, err := Generate(dir, presets, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.wav"), filepath.Join(dir, "b.wav")}, written)

	// Existing files are kept unless forced.
	written, err = Generate(dir, presets, false)
	require.NoError(t, err)
	assert.Empty(t, written)

	written, err = Generate(dir, presets, true)
	require.NoError(t, err)
	assert.Len(t, written, 2)
}

func TestGenerateContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	presets := []Preset{
		{File: "bad.wav", Duration: time.Second, NoiseMix: 3},
		{File: "good.wav", Duration: 10 * time.Millisecond, Freq: [2]float64{440, 440}, Vol: [2]float64{1, 1}},
	}

	written, err := Generate(dir, presets, false)
	require.Error(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "good.wav")}, written)

	_, statErr := os.Stat(filepath.Join(dir, "bad.wav"))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "failed render leaves no partial file")
}
