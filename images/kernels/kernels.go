// Package kernels builds convolution kernels as matrix.Matrix values and
// applies them to bitmaps channel by channel.
//
// matrix.Convolution is causal and does not mirror the kernel: the output at
// (x, y) mixes pixels at and above-left of (x, y). Kernels built here are
// meant to be used with it as they are; pass a kernel through Flip to get the
// mirrored textbook convolution.
package kernels

import (
	"math"

	"github.com/shalevy1/libpillowfight/matrix"
)

// Options configures Gaussian.
type Options struct {
	Radius int     // Half width; the kernel is (2*Radius+1) square. Derived from Sigma when 0.
	Sigma  float64 // Standard deviation. Derived from Radius (Radius/3) when 0.
}

// Identity returns the 1x1 kernel [1]. Convolving with it copies the image.
func Identity() *matrix.Matrix {
	return matrix.FromValues(1, 1, []float64{1})
}

// Box returns a (2r+1) x (2r+1) kernel whose cells are all 1/(2r+1)², so
// convolving averages the window. A radius <= 0 yields Identity.
func Box(radius int) *matrix.Matrix {
	if radius <= 0 {
		return Identity()
	}
	size := 2*radius + 1
	k := matrix.New(size, size)
	v := 1 / float64(size*size)
	for i := range k.Values() {
		k.Values()[i] = v
	}
	return k
}

// Gaussian returns a square Gaussian kernel normalised to sum to 1.
//
// With only Sigma set the radius is ceil(3*Sigma), which covers 99.7% of the
// distribution. With neither set the result is Identity.
func Gaussian(opt Options) *matrix.Matrix {
	radius, sigma := opt.Radius, opt.Sigma
	switch {
	case radius <= 0 && sigma <= 0:
		return Identity()
	case radius <= 0:
		radius = int(math.Ceil(sigma * 3))
	case sigma <= 0:
		sigma = float64(radius) / 3
	}

	// Separable: the 2D kernel is the outer product of a 1D one with itself.
	size := 2*radius + 1
	line := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range line {
		d := float64(i - radius)
		line[i] = math.Exp(-(d * d) / twoSigmaSq)
		sum += line[i]
	}

	k := matrix.New(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k.Set(x, y, line[x]*line[y]/(sum*sum))
		}
	}
	return k
}

// Flip returns k rotated by 180 degrees.
func Flip(k *matrix.Matrix) *matrix.Matrix {
	w, h := k.Width(), k.Height()
	out := matrix.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(w-1-x, h-1-y, k.At(x, y))
		}
	}
	return out
}
