package fxkit

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance that approximates a quarter
// circle of radius 1.
const kappa = 0.5522847498307936

// fillShape rasterizes the path built by trace into a coverage mask and
// composites col through it. bounds limits the blend loop; pixels outside
// it are never touched.
func (c *Canvas) fillShape(col Color, bounds image.Rectangle, trace func(z *vector.Rasterizer)) {
	bounds = bounds.Intersect(c.Bounds())
	if bounds.Empty() || col.A == 0 {
		return
	}

	if c.mask == nil {
		c.raster = vector.NewRasterizer(c.width, c.height)
		c.mask = image.NewAlpha(c.Bounds())
	}
	z := c.raster
	z.Reset(c.width, c.height)
	z.DrawOp = draw.Src
	trace(z)
	z.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := c.mask.Pix[y*c.mask.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if cov := row[x]; cov != 0 {
				c.Over(x, y, col, cov)
			}
		}
	}
}

// FillCircle composites a filled disc. Radius <= 0 is a no-op.
func (c *Canvas) FillCircle(center Point, radius float64, col Color) {
	if radius <= 0 || math.IsNaN(radius) {
		return
	}
	bounds := image.Rect(
		int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)),
		int(math.Ceil(center.X+radius))+1, int(math.Ceil(center.Y+radius))+1,
	)
	c.fillShape(col, bounds, func(z *vector.Rasterizer) {
		traceCircle(z, center, radius)
	})
}

// FillTriangle composites a filled triangle.
func (c *Canvas) FillTriangle(tri [3]Point, col Color) {
	minX, minY := tri[0].X, tri[0].Y
	maxX, maxY := minX, minY
	for _, p := range tri[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)
	c.fillShape(col, bounds, func(z *vector.Rasterizer) {
		z.MoveTo(float32(tri[0].X), float32(tri[0].Y))
		z.LineTo(float32(tri[1].X), float32(tri[1].Y))
		z.LineTo(float32(tri[2].X), float32(tri[2].Y))
		z.ClosePath()
	})
}

// traceCircle appends a closed circle made of four cubic segments.
func traceCircle(z *vector.Rasterizer, center Point, r float64) {
	cx, cy := float32(center.X), float32(center.Y)
	rr := float32(r)
	k := float32(r * kappa)

	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()
}
