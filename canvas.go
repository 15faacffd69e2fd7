package fxkit

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/haewon/fxkit/internal/blend"
)

// Canvas is a fixed-size RGBA8 pixel buffer.
//
// Pixels are stored premultiplied, 4 bytes per pixel, in the same layout as
// image.RGBA. A canvas is owned by whoever builds one frame; it is not safe
// for concurrent mutation.
type Canvas struct {
	width  int
	height int
	data   []uint8

	// scratch state for shape fills, allocated on first use
	raster *vector.Rasterizer
	mask   *image.Alpha
}

// NewCanvas creates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw premultiplied pixel data.
func (c *Canvas) Data() []uint8 {
	return c.data
}

// Pixel returns the straight-alpha colour of a single pixel.
// Out-of-bounds coordinates return transparent.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.NRGBA{}
	}
	i := (y*c.width + x) * 4
	a := c.data[i+3]
	r, g, b := blend.Unpremultiply(c.data[i+0], c.data[i+1], c.data[i+2], a)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Over composites col onto pixel (x, y) with the given coverage (0-255).
func (c *Canvas) Over(x, y int, col Color, coverage uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	blend.OverPixel(c.data[i:i+4], col.R, col.G, col.B, col.A, coverage)
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	clear(c.data)
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	out := NewCanvas(c.width, c.height)
	copy(out.data, c.data)
	return out
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// FromImage creates a canvas from any image.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Canvas{width: b.Dx(), height: b.Dy(), data: rgba.Pix}
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the caller
	if err != nil {
		return fmt.Errorf("fxkit: create %s: %w", path, err)
	}
	if err := png.Encode(f, c.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("fxkit: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	i := (y*c.width + x) * 4
	return color.RGBA{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
