package fxkit

// RadialGradient describes a soft blob: a colour ramp from Inner at the
// centre to Outer at Radius.
//
// The canvas has no radial shader. The ramp is approximated by painting
// nested flat discs from the outer radius inward, each composited over
// what is already there.
//
// Example:
//
//	c.FillRadialGradient(fxkit.RadialGradient{
//	    Center: fxkit.Pt(64, 64),
//	    Radius: 12,
//	    Inner:  fxkit.RGBA(255, 255, 255, 255),
//	    Outer:  fxkit.RGBA(255, 230, 100, 180),
//	})
type RadialGradient struct {
	Center Point
	Radius float64
	Inner  Color // colour and alpha at the centre
	Outer  Color // colour and alpha at Radius
}

// Rings returns the number of discs the gradient paints: floor(Radius),
// or 0 for a non-positive radius.
func (g RadialGradient) Rings() int {
	if g.Radius <= 0 {
		return 0
	}
	return int(g.Radius)
}

// RingColor returns the flat colour of the disc with radius r.
// With ratio = r/Radius the outer colour weighs ratio and the inner colour
// 1-ratio; every channel is truncated to an integer.
func (g RadialGradient) RingColor(r int) Color {
	if g.Radius <= 0 {
		return Transparent
	}
	return g.Inner.Mix(g.Outer, float64(r)/g.Radius)
}

// FillRadialGradient paints g onto the canvas. A radius <= 0 is a no-op.
func (c *Canvas) FillRadialGradient(g RadialGradient) {
	for r := g.Rings(); r > 0; r-- {
		c.FillCircle(g.Center, float64(r), g.RingColor(r))
	}
}
