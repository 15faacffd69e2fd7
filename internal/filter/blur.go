package filter

import (
	"github.com/haewon/fxkit"
)

// Blur applies a separable Gaussian blur with sigma = radius to the whole
// canvas, in place. Radius <= 0 leaves the canvas untouched.
//
// The two passes are:
//  1. Horizontal: convolve each row of the canvas into a float buffer
//  2. Vertical: convolve each column of the buffer back into the canvas
//
// Samples past the border repeat the edge pixel.
func Blur(c *fxkit.Canvas, radius float64) {
	if c == nil || radius <= 0 || c.Width() == 0 || c.Height() == 0 {
		return
	}

	kernel := CachedGaussianKernel(radius)
	temp := make([]float32, c.Width()*c.Height()*4)

	blurHorizontal(c, temp, kernel)
	blurVertical(temp, c, kernel)

	fxkit.Logger().Debug("filter: blur", "radius", radius, "kernel", len(kernel))
}

// blurHorizontal convolves rows of src into temp (RGBA float32).
func blurHorizontal(src *fxkit.Canvas, temp []float32, kernel []float32) {
	halfKernel := len(kernel) / 2
	width, height := src.Width(), src.Height()
	data := src.Data()

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := clampInt(x+k-halfKernel, 0, width-1)
				i := (row + kx) * 4
				r += float32(data[i+0]) * weight
				g += float32(data[i+1]) * weight
				b += float32(data[i+2]) * weight
				a += float32(data[i+3]) * weight
			}

			t := (row + x) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurVertical convolves columns of temp back into dst.
func blurVertical(temp []float32, dst *fxkit.Canvas, kernel []float32) {
	halfKernel := len(kernel) / 2
	width, height := dst.Width(), dst.Height()
	data := dst.Data()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := clampInt(y+k-halfKernel, 0, height-1)
				t := (ky*width + x) * 4
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
				a += temp[t+3] * weight
			}

			// Premultiplied channels must not exceed alpha after rounding.
			alpha := clampUint8(a)
			i := (y*width + x) * 4
			data[i+0] = min(clampUint8(r), alpha)
			data[i+1] = min(clampUint8(g), alpha)
			data[i+2] = min(clampUint8(b), alpha)
			data[i+3] = alpha
		}
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
