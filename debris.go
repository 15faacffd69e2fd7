package fxkit

import (
	"math"
	"math/rand/v2"
)

// DefaultDebrisPalette holds the ember colours used when Debris.Palette is empty.
var DefaultDebrisPalette = []Color{
	{R: 255, G: 100, B: 30, A: 230},
	{R: 200, G: 60, B: 20, A: 200},
	{R: 255, G: 160, B: 50, A: 180},
	{R: 180, G: 40, B: 10, A: 160},
}

// DebrisMinDistanceRatio is the inner edge of the scatter ring as a
// fraction of MaxDist.
const DebrisMinDistanceRatio = 0.4

// Debris scatters Count small discs around Center.
type Debris struct {
	Center  Point
	Count   int
	MaxDist float64
	MinSize int // inclusive
	MaxSize int // inclusive
	Palette []Color
}

// Dot is one scattered debris disc.
type Dot struct {
	Pos    Point
	Radius int
	Color  Color
}

// Scatter samples the dots. Each dot draws, in order: angle in [0, 2π),
// distance in [0.4·MaxDist, MaxDist], an integer radius in
// [MinSize, MaxSize] and a palette index.
//
// Count <= 0 or MaxDist <= 0 yields nil without touching rng.
func (d Debris) Scatter(rng *rand.Rand) []Dot {
	if d.Count <= 0 || d.MaxDist <= 0 {
		return nil
	}
	palette := d.Palette
	if len(palette) == 0 {
		palette = DefaultDebrisPalette
	}
	lo, hi := d.MinSize, d.MaxSize
	if hi < lo {
		lo, hi = hi, lo
	}
	minDist := d.MaxDist * DebrisMinDistanceRatio

	dots := make([]Dot, 0, d.Count)
	for range d.Count {
		angle := rng.Float64() * 2 * math.Pi
		dist := minDist + rng.Float64()*(d.MaxDist-minDist)
		size := lo + rng.IntN(hi-lo+1)
		col := palette[rng.IntN(len(palette))]
		dots = append(dots, Dot{
			Pos:    d.Center.Add(Polar(angle, dist)),
			Radius: size,
			Color:  col,
		})
	}
	return dots
}

// FillDebris scatters d with rng and paints every dot.
// It returns the dots it painted.
func (c *Canvas) FillDebris(d Debris, rng *rand.Rand) []Dot {
	dots := d.Scatter(rng)
	for _, dot := range dots {
		c.FillCircle(dot.Pos, float64(dot.Radius), dot.Color)
	}
	return dots
}
