// Package sfx renders the game's synthesized sound effects to WAV files.
//
// Each effect is a Preset: an output file name plus the parameters of one
// synth.Tone. The built-in table covers every effect the game ships; a YAML
// file with the same shape can replace it.
package sfx

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/haewon/fxkit/internal/synth"
)

//go:embed presets/default.yaml
var defaultPresets []byte

// Preset is one sound effect.
type Preset struct {
	File     string        `yaml:"file"`
	Duration time.Duration `yaml:"duration"`
	Freq     [2]float64    `yaml:"freq"` // start, end in Hz
	Vol      [2]float64    `yaml:"vol"`  // start, end
	Wave     synth.Wave    `yaml:"wave"`
	NoiseMix float64       `yaml:"noise_mix"`
	Curve    synth.Curve   `yaml:"curve"`
	Seed     uint64        `yaml:"seed"`
}

// Tone returns the synth parameters of p.
func (p Preset) Tone() synth.Tone {
	return synth.Tone{
		Duration:  p.Duration,
		FreqStart: p.Freq[0],
		FreqEnd:   p.Freq[1],
		VolStart:  p.Vol[0],
		VolEnd:    p.Vol[1],
		Wave:      p.Wave,
		NoiseMix:  p.NoiseMix,
		Curve:     p.Curve,
		Seed:      p.Seed,
	}
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// ValidationError reports a preset field that cannot be rendered.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("sfx: invalid preset: %s: %s", e.Field, e.Message)
}

// DefaultPresets returns the built-in preset table.
func DefaultPresets() []Preset {
	presets, err := ParsePresets(defaultPresets)
	if err != nil {
		panic(err) // embedded data is fixed at build time
	}
	return presets
}

// LoadPresets reads and validates a preset file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sfx: load presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes and validates a YAML preset table.
func ParsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sfx: parse presets: %w", err)
	}
	if err := Validate(f.Presets); err != nil {
		return nil, err
	}
	return f.Presets, nil
}

// Validate checks every preset and that output names are unique.
func Validate(presets []Preset) error {
	if len(presets) == 0 {
		return ValidationError{Field: "presets", Message: "must not be empty"}
	}
	seen := make(map[string]bool, len(presets))
	for i, p := range presets {
		field := fmt.Sprintf("presets[%d]", i)
		switch {
		case p.File == "":
			return ValidationError{Field: field + ".file", Message: "must not be empty"}
		case filepath.Base(p.File) != p.File:
			return ValidationError{Field: field + ".file", Message: "must be a bare file name"}
		case !strings.EqualFold(filepath.Ext(p.File), ".wav"):
			return ValidationError{Field: field + ".file", Message: "must end in .wav"}
		case seen[strings.ToLower(p.File)]:
			return ValidationError{Field: field + ".file", Message: fmt.Sprintf("duplicate %q", p.File)}
		case p.Duration <= 0:
			return ValidationError{Field: field + ".duration", Message: "must be positive"}
		}
		if err := p.Tone().Validate(); err != nil {
			return ValidationError{Field: field, Message: err.Error()}
		}
		seen[strings.ToLower(p.File)] = true
	}
	return nil
}
