package effect

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/haewon/fxkit"
)

// Paint is a recipe colour: a hex RGB value plus an 8-bit alpha.
//
// In YAML it is either a bare hex string (opaque) or a mapping:
//
//	inner: "#ffffff"
//	outer: {hex: "#ffe664", alpha: 180}
type Paint struct {
	Hex   string `yaml:"hex"`
	Alpha uint8  `yaml:"alpha"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Paint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Hex = node.Value
		p.Alpha = 255
		return nil
	}
	type plain Paint
	v := plain{Alpha: 255}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Paint(v)
	return nil
}

// Color parses the paint into a canvas colour.
func (p Paint) Color() (fxkit.Color, error) {
	return fxkit.ParseHex(p.Hex, p.Alpha)
}

// Range is an inclusive [Min, Max] interval of reals. A single YAML scalar
// sets both ends.
type Range struct {
	Min, Max float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var bounds []float64
	if err := decodeBounds(node, &bounds); err != nil {
		return err
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// IntRange is an inclusive [Min, Max] interval of integers. A single YAML
// scalar sets both ends.
type IntRange struct {
	Min, Max int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *IntRange) UnmarshalYAML(node *yaml.Node) error {
	var bounds []int
	if err := decodeBounds(node, &bounds); err != nil {
		return err
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// decodeBounds reads a scalar or a two-element sequence into out, always
// leaving exactly two values.
func decodeBounds[T int | float64](node *yaml.Node, out *[]T) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v T
		if err := node.Decode(&v); err != nil {
			return err
		}
		*out = []T{v, v}
		return nil
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: range needs [min, max], got %d values", node.Line, len(node.Content))
		}
		return node.Decode(out)
	default:
		return fmt.Errorf("line %d: range must be a number or [min, max]", node.Line)
	}
}
