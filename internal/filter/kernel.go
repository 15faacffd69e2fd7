package filter

import (
	"math"

	"github.com/haewon/fxkit/internal/cache"
)

// GaussianKernel returns a normalized 1D Gaussian with sigma = radius and
// 2·ceil(3σ)+1 taps. A non-positive or NaN radius yields the identity [1].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 || math.IsNaN(radius) {
		return []float32{1}
	}

	half := int(math.Ceil(radius * 3))
	weights := make([]float64, half+1)
	sum := 0.0
	for d := range weights {
		w := math.Exp(-float64(d*d) / (2 * radius * radius))
		weights[d] = w
		if d == 0 {
			sum += w
		} else {
			sum += 2 * w
		}
	}

	kernel := make([]float32, 2*half+1)
	for d, w := range weights {
		v := float32(w / sum)
		kernel[half+d] = v
		kernel[half-d] = v
	}
	return kernel
}

// kernels memoizes kernels by radius quantized to 0.01.
// Effect recipes reuse a handful of radii across every render.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared kernel for the radius.
// Callers must not modify the returned slice.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}
