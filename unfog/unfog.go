// Package unfog strips the hazy background that generated sprites often
// carry: near-transparent noise, bright grey fog in semi-transparent areas
// and pale opaque matting along the image border.
//
// The pass is a heuristic on straight-alpha pixels. It only ever lowers
// alpha; colour channels are left untouched.
package unfog

import (
	"image"

	"github.com/haewon/fxkit/internal/imageio"
)

// Thresholds of the fog heuristic. Brightness is the mean of R, G and B;
// saturation is max(R,G,B) - min(R,G,B).
const (
	// Alpha below this is treated as noise and cleared.
	NoiseAlpha = 30

	// Alpha in [NoiseAlpha, SolidAlpha) is semi-transparent and inspected
	// for fog.
	SolidAlpha = 200

	// Semi-transparent pixels brighter than FogBrightness and less
	// saturated than FogSaturation are fog and cleared.
	FogBrightness = 180
	FogSaturation = 50

	// Other semi-transparent pixels fade by (brightness-FadeStart)/FadeSpan,
	// capped at MaxFade.
	FadeStart = 150
	FadeSpan  = 105
	MaxFade   = 0.7

	// Pixels within BorderWidth of an edge that are brighter than
	// BorderBrightness, less saturated than BorderSaturation and more
	// opaque than BorderAlpha are background matting and cleared.
	BorderWidth      = 5
	BorderBrightness = 200
	BorderSaturation = 40
	BorderAlpha      = 100
)

func brightness(r, g, b uint8) float64 {
	return (float64(r) + float64(g) + float64(b)) / 3
}

func saturation(r, g, b uint8) int {
	return int(max(r, g, b)) - int(min(r, g, b))
}

// fade returns the fraction of alpha removed from a semi-transparent pixel
// that is not fog.
func fade(bright float64) float64 {
	f := (bright - FadeStart) / FadeSpan
	return min(max(f, 0), MaxFade)
}

// Process returns a defogged copy of img. The input is not modified.
func Process(img image.Image) *image.NRGBA {
	src := imageio.ToNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], src.Pix[y*src.Stride:])
	}

	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			a := p[3]
			switch {
			case a < NoiseAlpha:
				p[3] = 0
			case a < SolidAlpha:
				bright := brightness(p[0], p[1], p[2])
				if bright > FogBrightness && saturation(p[0], p[1], p[2]) < FogSaturation {
					p[3] = 0
				} else {
					p[3] = uint8(float64(a) * (1 - fade(bright)))
				}
			}
		}
	}

	// The border band sees the alpha left by the passes above.
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < w; x++ {
			if !inBorder(x, y, w, h) {
				continue
			}
			p := row[x*4 : x*4+4]
			if p[3] > BorderAlpha &&
				brightness(p[0], p[1], p[2]) > BorderBrightness &&
				saturation(p[0], p[1], p[2]) < BorderSaturation {
				p[3] = 0
			}
		}
	}

	return out
}

func inBorder(x, y, w, h int) bool {
	return x < BorderWidth || y < BorderWidth || x >= w-BorderWidth || y >= h-BorderWidth
}

// TransparentRatio returns the fraction of pixels whose alpha is exactly 0.
// An empty image reports 0.
func TransparentRatio(img *image.NRGBA) float64 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	var n int
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				n++
			}
		}
	}
	return float64(n) / float64(w*h)
}
