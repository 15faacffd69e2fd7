package fxkit

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA8 colour.
// It is the unit every primitive is specified in.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a colour from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque colour from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseHex parses "#rrggbb" or "#rgb" and attaches the given alpha.
func ParseHex(hex string, alpha uint8) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("fxkit: parse colour %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats the RGB part as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the standard library's straight-alpha colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Mix interpolates two colours channel-wise, weighting other by t and c by
// 1-t, and truncates toward zero. t = 0 yields c, t = 1 yields other.
func (c Color) Mix(other Color, t float64) Color {
	return Color{
		R: mixChannel(c.R, other.R, t),
		G: mixChannel(c.G, other.G, t),
		B: mixChannel(c.B, other.B, t),
		A: mixChannel(c.A, other.A, t),
	}
}

func mixChannel(from, to uint8, t float64) uint8 {
	// single-product form keeps the result monotone in t after truncation
	return uint8(clamp255(float64(from) + (float64(to)-float64(from))*t))
}

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Transparent is the zero colour.
var Transparent = Color{}
