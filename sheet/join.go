package sheet

import (
	"image"
	"image/color"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// JoinOptions controls the layout of a preview sheet.
type JoinOptions struct {
	// Labels draws each frame's index in the top-left corner of its cell.
	Labels bool

	// Scale enlarges every frame by an integer factor with nearest-neighbour
	// sampling. Values below 1 mean 1.
	Scale int

	// Gap is the spacing in pixels between cells and around the sheet.
	Gap int

	// Background fills the sheet before frames are drawn. Nil leaves it
	// transparent.
	Background color.Color
}

var (
	labelInk    = image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	labelShadow = image.NewUniform(color.RGBA{A: 200})
)

// Join lays frames out left to right, top to bottom, cols per row. Cells are
// sized to the largest frame. cols <= 0 puts every frame in one row.
func Join(frames []image.Image, cols int, opts JoinOptions) (*image.RGBA, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if cols <= 0 || cols > len(frames) {
		cols = len(frames)
	}
	rows := (len(frames) + cols - 1) / cols
	scale := max(opts.Scale, 1)
	gap := max(opts.Gap, 0)

	var cw, ch int
	for _, f := range frames {
		b := f.Bounds()
		cw = max(cw, b.Dx()*scale)
		ch = max(ch, b.Dy()*scale)
	}

	dst := image.NewRGBA(image.Rect(0, 0, gap+cols*(cw+gap), gap+rows*(ch+gap)))
	if opts.Background != nil {
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	}

	for i, f := range frames {
		origin := image.Pt(gap+(i%cols)*(cw+gap), gap+(i/cols)*(ch+gap))
		b := f.Bounds()
		cell := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(b.Dx()*scale, b.Dy()*scale))}
		if scale == 1 {
			xdraw.Copy(dst, origin, f, b, xdraw.Over, nil)
		} else {
			xdraw.NearestNeighbor.Scale(dst, cell, f, b, xdraw.Over, nil)
		}
		if opts.Labels {
			drawLabel(dst, origin, strconv.Itoa(i))
		}
	}
	return dst, nil
}

// drawLabel writes text with a one-pixel drop shadow just inside origin.
func drawLabel(dst *image.RGBA, origin image.Point, text string) {
	face := basicfont.Face7x13
	x := origin.X + 2
	y := origin.Y + 2 + face.Ascent

	d := font.Drawer{Dst: dst, Src: labelShadow, Face: face, Dot: fixed.P(x+1, y+1)}
	d.DrawString(text)
	d.Src = labelInk
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
