// Package effect renders procedural radial particle effects.
//
// An effect is described by a Recipe: a canvas size, a base seed and an
// ordered list of frames. Each frame stacks layers back to front (gradient
// blobs, spikes, debris) and finishes with a Gaussian blur. One generic
// procedure renders every frame, so new effects are data, not code.
//
// Every frame draws from its own generator seeded with (seed, frame index).
// Rendering frame 2 alone gives the same pixels as rendering it after
// frames 0 and 1.
package effect

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed recipes/*.yaml
var builtinRecipes embed.FS

// DefaultRecipeName names the built-in physical hit explosion.
const DefaultRecipeName = "fx_hit_physical"

// Recipe limits. Larger values are rejected by Validate before any buffer
// is allocated.
const (
	MaxSize  = 4096 // canvas side in pixels
	MaxCount = 4096 // primitives per layer
)

// LayerKind selects the primitive a layer paints.
type LayerKind string

// Layer kinds.
const (
	KindBlob   LayerKind = "blob"
	KindSpikes LayerKind = "spikes"
	KindDebris LayerKind = "debris"
)

// Recipe is a complete effect description.
type Recipe struct {
	Name   string  `yaml:"name"`
	Size   int     `yaml:"size"`
	Seed   uint64  `yaml:"seed"`
	Frames []Frame `yaml:"frames"`
}

// Frame is one animation frame: layers in paint order, then a blur.
type Frame struct {
	Blur   float64 `yaml:"blur"`
	Layers []Layer `yaml:"layers"`
}

// Layer is one group of primitives. Which fields apply depends on Kind.
//
// blob: Count gradient blobs, each centred at the canvas centre plus an
// integer offset in [-Jitter, Jitter] per axis, with an integer radius drawn
// from Radius, shading from Inner to Outer.
//
// spikes: Count spikes evenly spaced around the centre, each bearing
// perturbed by up to AngleJitter radians, with length and width drawn from
// Length and Width and colour Colors[i % len(Colors)].
//
// debris: Count dots scattered between 0.4·MaxDist and MaxDist from the
// centre, radius drawn from Size, colour drawn from Palette.
type Layer struct {
	Kind  LayerKind `yaml:"kind"`
	Count int       `yaml:"count"`

	// blob
	Jitter int      `yaml:"jitter"`
	Radius IntRange `yaml:"radius"`
	Inner  Paint    `yaml:"inner"`
	Outer  Paint    `yaml:"outer"`

	// spikes
	AngleJitter float64 `yaml:"angle_jitter"`
	Length      Range   `yaml:"length"`
	Width       Range   `yaml:"width"`
	Colors      []Paint `yaml:"colors"`

	// debris
	MaxDist float64  `yaml:"max_dist"`
	Size    IntRange `yaml:"size"`
	Palette []Paint  `yaml:"palette"`
}

// ValidationError reports a recipe field that cannot be rendered.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("effect: invalid recipe: %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// LoadRecipe reads and validates a recipe file.
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("effect: load recipe: %w", err)
	}
	return ParseRecipe(data)
}

// ParseRecipe decodes and validates a YAML recipe.
func ParseRecipe(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("effect: parse recipe: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Builtin returns a copy of an embedded recipe by name.
func Builtin(name string) (*Recipe, error) {
	data, err := builtinRecipes.ReadFile("recipes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("effect: no built-in recipe %q", name)
	}
	return ParseRecipe(data)
}

// Default returns the built-in physical hit recipe.
func Default() *Recipe {
	r, err := Builtin(DefaultRecipeName)
	if err != nil {
		panic(err) // embedded data is fixed at build time
	}
	return r
}

// Validate checks that every frame and layer can be rendered.
// Zero counts and zero radii are allowed and render nothing. Blur radii and
// primitive radii may not exceed the canvas size.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ValidationError{Field: "name", Message: "must not be empty"}
	}
	if r.Size <= 0 {
		return ValidationError{Field: "size", Message: "must be positive"}
	}
	if r.Size > MaxSize {
		return ValidationError{Field: "size", Message: fmt.Sprintf("must be at most %d", MaxSize)}
	}
	if len(r.Frames) == 0 {
		return ValidationError{Field: "frames", Message: "must not be empty"}
	}
	for i, f := range r.Frames {
		field := fmt.Sprintf("frames[%d].blur", i)
		if err := checkFinite(field, f.Blur); err != nil {
			return err
		}
		if f.Blur < 0 {
			return ValidationError{Field: field, Message: "must not be negative"}
		}
		if f.Blur > float64(r.Size) {
			return ValidationError{Field: field, Message: fmt.Sprintf("must be at most the size %d", r.Size)}
		}
		for j, l := range f.Layers {
			if err := l.validate(fmt.Sprintf("frames[%d].layers[%d]", i, j), r.Size); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Layer) validate(path string, size int) error {
	field := func(name string) string { return path + "." + name }

	if l.Count < 0 {
		return ValidationError{Field: field("count"), Message: "must not be negative"}
	}
	if l.Count > MaxCount {
		return ValidationError{Field: field("count"), Message: fmt.Sprintf("must be at most %d", MaxCount)}
	}

	switch l.Kind {
	case KindBlob:
		if l.Jitter < 0 {
			return ValidationError{Field: field("jitter"), Message: "must not be negative"}
		}
		if err := checkIntRange(field("radius"), l.Radius, 0, size); err != nil {
			return err
		}
		if err := checkPaints(field("inner"), l.Inner); err != nil {
			return err
		}
		return checkPaints(field("outer"), l.Outer)

	case KindSpikes:
		if err := checkFinite(field("angle_jitter"), l.AngleJitter); err != nil {
			return err
		}
		if err := checkFinite(field("length"), l.Length.Min, l.Length.Max); err != nil {
			return err
		}
		if err := checkFinite(field("width"), l.Width.Min, l.Width.Max); err != nil {
			return err
		}
		if l.AngleJitter < 0 {
			return ValidationError{Field: field("angle_jitter"), Message: "must not be negative"}
		}
		if l.Length.Min > l.Length.Max {
			return ValidationError{Field: field("length"), Message: "min exceeds max"}
		}
		if l.Width.Min > l.Width.Max {
			return ValidationError{Field: field("width"), Message: "min exceeds max"}
		}
		if l.Count > 0 && len(l.Colors) == 0 {
			return ValidationError{Field: field("colors"), Message: "must not be empty"}
		}
		return checkPaints(field("colors"), l.Colors...)

	case KindDebris:
		if err := checkFinite(field("max_dist"), l.MaxDist); err != nil {
			return err
		}
		if l.MaxDist < 0 {
			return ValidationError{Field: field("max_dist"), Message: "must not be negative"}
		}
		if err := checkIntRange(field("size"), l.Size, 0, size); err != nil {
			return err
		}
		return checkPaints(field("palette"), l.Palette...)

	default:
		return ValidationError{Field: field("kind"), Message: fmt.Sprintf("unknown layer kind %q", l.Kind)}
	}
}

func checkIntRange(field string, r IntRange, floor, ceil int) error {
	if r.Min < floor {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d", floor)}
	}
	if r.Min > r.Max {
		return ValidationError{Field: field, Message: "min exceeds max"}
	}
	if r.Max > ceil {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d", ceil)}
	}
	return nil
}

func checkFinite(field string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ValidationError{Field: field, Message: "must be a finite number"}
		}
	}
	return nil
}

func checkPaints(field string, paints ...Paint) error {
	for _, p := range paints {
		if _, err := p.Color(); err != nil {
			return ValidationError{Field: field, Message: err.Error()}
		}
	}
	return nil
}
