package fxkit

import "math"

// Spike is a sharp ray: a triangle whose tip lies Length away from Center
// at bearing Angle and whose base is Width wide across Center.
type Spike struct {
	Center Point
	Angle  float64 // radians
	Length float64
	Width  float64
	Fill   Color
}

// Tip returns the far point of the spike.
func (s Spike) Tip() Point {
	return s.Center.Add(Polar(s.Angle, s.Length))
}

// Triangle returns the base corner on the +90° side, the tip, and the base
// corner on the -90° side.
func (s Spike) Triangle() [3]Point {
	half := Polar(s.Angle+math.Pi/2, s.Width/2)
	return [3]Point{
		s.Center.Add(half),
		s.Tip(),
		s.Center.Sub(half),
	}
}

// FillSpike paints s onto the canvas. Non-positive length or width is a no-op.
func (c *Canvas) FillSpike(s Spike) {
	if s.Length <= 0 || s.Width <= 0 {
		return
	}
	c.FillTriangle(s.Triangle(), s.Fill)
}
