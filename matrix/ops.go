package matrix

import "github.com/shalevy1/libpillowfight/internal/logging"

// Transpose returns a new height x width matrix where out.At(y, x) equals
// in.At(x, y).
func Transpose(in *Matrix) *Matrix {
	out := New(in.height, in.width)

	// in.values[y*w + x] -> out.values[x*h + y]
	var base int
	for y := 0; y < in.height; y++ {
		base = y * in.width
		for x := 0; x < in.width; x++ {
			out.values[x*in.height+y] = in.values[base+x]
		}
	}
	return out
}

// Convolution computes the causal 2D discrete convolution of img with kernel
// and returns a new matrix the size of img:
//
//	out[x, y] = Σ_kx Σ_ky img[x-kx, y-ky] * kernel[kx, ky]
//
// Terms whose image coordinate falls below zero contribute nothing, which is
// zero padding along the top and left edges. The kernel is applied as given;
// flip it first (see kernels.Flip) for the mirrored textbook form.
//
// Cost is O(img.Width * img.Height * kernel.Width * kernel.Height).
//
// See also:
//   - https://en.wikipedia.org/wiki/Kernel_(image_processing)#Convolution
//   - http://www.songho.ca/dsp/convolution/convolution2d_example.html
func Convolution(img, kernel *Matrix) *Matrix {
	logging.Logger().Debug("matrix: convolution",
		"image_width", img.width, "image_height", img.height,
		"kernel_width", kernel.width, "kernel_height", kernel.height)

	out := New(img.width, img.height)

	for y := 0; y < img.height; y++ {
		// Kernel rows past y would read above the image.
		ky1 := min(kernel.height, y+1)
		for x := 0; x < img.width; x++ {
			kx1 := min(kernel.width, x+1)

			// Kernel columns outer, rows inner.
			var sum float64
			for kx := 0; kx < kx1; kx++ {
				for ky := 0; ky < ky1; ky++ {
					sum += img.values[(y-ky)*img.width+x-kx] * kernel.values[ky*kernel.width+kx]
				}
			}
			out.values[y*img.width+x] = sum
		}
	}
	return out
}
