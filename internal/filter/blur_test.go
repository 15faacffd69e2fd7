package filter

import (
	"testing"

	"github.com/haewon/fxkit"
)

// solidCanvas returns a canvas filled with one opaque straight colour.
func solidCanvas(w, h int, col fxkit.Color) *fxkit.Canvas {
	c := fxkit.NewCanvas(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.Over(x, y, col, 255)
		}
	}
	return c
}

func TestBlurZeroRadiusIdentity(t *testing.T) {
	c := fxkit.NewCanvas(9, 9)
	c.Over(4, 4, fxkit.RGB(255, 0, 0), 255)
	before := c.Clone()

	for _, radius := range []float64{0, -2} {
		Blur(c, radius)
		for i := range before.Data() {
			if c.Data()[i] != before.Data()[i] {
				t.Fatalf("radius %v changed byte %d", radius, i)
			}
		}
	}
}

func TestBlurUniformStaysUniform(t *testing.T) {
	col := fxkit.RGB(200, 120, 40)
	c := solidCanvas(12, 10, col)
	Blur(c, 1.5)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			p := c.Pixel(x, y)
			if p.A != 255 || absDiff(p.R, 200) > 1 || absDiff(p.G, 120) > 1 || absDiff(p.B, 40) > 1 {
				t.Fatalf("pixel (%d,%d) = %v, want ~%v", x, y, p, col)
			}
		}
	}
}

func TestBlurSpreadsToNeighbours(t *testing.T) {
	c := fxkit.NewCanvas(15, 15)
	c.Over(7, 7, fxkit.RGB(255, 255, 255), 255)
	Blur(c, 1.0)

	centre := c.Pixel(7, 7).A
	near := c.Pixel(8, 7).A
	far := c.Pixel(12, 7).A

	if centre == 255 {
		t.Error("centre pixel kept full alpha after blur")
	}
	if near == 0 {
		t.Error("neighbour received no energy")
	}
	if near > centre {
		t.Errorf("neighbour alpha %d exceeds centre %d", near, centre)
	}
	if far != 0 {
		t.Errorf("pixel 5px away has alpha %d, want 0 for radius 1", far)
	}
}

func TestBlurKeepsPremultipliedInvariant(t *testing.T) {
	c := fxkit.NewCanvas(32, 32)
	c.FillCircle(fxkit.Pt(16, 16), 9, fxkit.RGBA(255, 200, 50, 200))
	c.FillCircle(fxkit.Pt(12, 18), 4, fxkit.RGBA(255, 255, 255, 255))
	c.FillSpike(fxkit.Spike{Center: fxkit.Pt(16, 16), Angle: 0.7, Length: 14, Width: 3, Fill: fxkit.RGBA(255, 130, 20, 150)})

	for _, radius := range []float64{0.8, 1.0, 1.2, 1.5, 4} {
		d := c.Clone()
		Blur(d, radius)
		data := d.Data()
		for i := 0; i < len(data); i += 4 {
			a := data[i+3]
			if data[i] > a || data[i+1] > a || data[i+2] > a {
				t.Fatalf("radius %v pixel %d: %v exceeds alpha %d", radius, i/4, data[i:i+3], a)
			}
		}
	}
}

func TestBlurEmptyCanvas(t *testing.T) {
	Blur(fxkit.NewCanvas(0, 0), 2)
	Blur(nil, 2)

	c := fxkit.NewCanvas(4, 4)
	Blur(c, 3)
	for i, v := range c.Data() {
		if v != 0 {
			t.Fatalf("transparent canvas gained Data[%d] = %d", i, v)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
