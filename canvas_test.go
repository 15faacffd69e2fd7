package fxkit

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewCanvasTransparent(t *testing.T) {
	c := NewCanvas(8, 4)
	if c.Width() != 8 || c.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", c.Width(), c.Height())
	}
	if len(c.Data()) != 8*4*4 {
		t.Fatalf("len(Data) = %d", len(c.Data()))
	}
	for i, v := range c.Data() {
		if v != 0 {
			t.Fatalf("Data[%d] = %d, want 0", i, v)
		}
	}
}

func TestCanvasOverAndPixel(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Over(1, 2, RGBA(200, 100, 50, 255), 255)

	got := c.Pixel(1, 2)
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("Pixel = %v, want %v", got, want)
	}

	// Out of bounds is ignored and reads as transparent.
	c.Over(-1, 0, RGB(255, 255, 255), 255)
	c.Over(4, 4, RGB(255, 255, 255), 255)
	if p := c.Pixel(-1, 0); p != (color.NRGBA{}) {
		t.Errorf("Pixel(-1,0) = %v", p)
	}
}

func TestCanvasOverHalfAlpha(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Over(0, 0, RGBA(0, 0, 255, 255), 255)
	c.Over(0, 0, RGBA(255, 0, 0, 128), 255)

	p := c.Pixel(0, 0)
	if p.A != 255 {
		t.Fatalf("A = %d, want 255", p.A)
	}
	if p.R != 128 || p.B != 127 {
		t.Errorf("Pixel = %v, want roughly half red half blue", p)
	}
}

func TestCanvasCloneIndependent(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Over(0, 0, RGB(10, 20, 30), 255)
	d := c.Clone()
	d.Over(0, 0, RGB(255, 255, 255), 255)

	if c.Pixel(0, 0) == d.Pixel(0, 0) {
		t.Error("Clone shares pixel storage with the original")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.FillCircle(Pt(1, 1), 2, RGB(255, 0, 0))
	c.Clear()
	for i, v := range c.Data() {
		if v != 0 {
			t.Fatalf("Data[%d] = %d after Clear", i, v)
		}
	}
}

func TestCanvasImageRoundTrip(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Over(1, 1, RGBA(255, 128, 0, 128), 255)

	img := c.ToImage()
	back := FromImage(img)
	for i := range c.Data() {
		if c.Data()[i] != back.Data()[i] {
			t.Fatalf("byte %d: %d != %d", i, c.Data()[i], back.Data()[i])
		}
	}

	// FromImage accepts straight-alpha sources and premultiplies them.
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 0, B: 0, A: 128})
	pm := FromImage(src)
	if a := pm.Data()[3]; a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
	if r := pm.Data()[0]; r > 128 {
		t.Errorf("premultiplied red %d exceeds alpha", r)
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(16, 16)
	c.FillCircle(Pt(8, 8), 5, RGBA(255, 100, 30, 230))

	path := filepath.Join(t.TempDir(), "dot.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != c.Bounds() {
		t.Errorf("bounds = %v, want %v", img.Bounds(), c.Bounds())
	}
	_, _, _, a := img.At(8, 8).RGBA()
	if got := int(a >> 8); got < 229 || got > 230 {
		t.Errorf("centre alpha = %d, want 230", got)
	}
}

func TestCanvasSavePNGBadPath(t *testing.T) {
	c := NewCanvas(1, 1)
	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}
