package kernels

import (
	"github.com/shalevy1/libpillowfight/images"
	"github.com/shalevy1/libpillowfight/matrix"
)

var rgb = [...]images.Color{images.Red, images.Green, images.Blue}

// Convolve filters the red, green and blue channels of src with kernel and
// returns the result as a new opaque bitmap. Each channel goes through
// images.ChannelToMatrix, matrix.Convolution and images.MatrixToChannel, so
// results are clamped to [0, 255].
//
// Arguments:
//   - src: The bitmap to filter. It is not modified.
//   - kernel: The convolution kernel, used as given.
//
// Returns:
//   - *images.Bitmap: A new bitmap of the same size as src.
//
// Example:
//
//	blurred := kernels.Convolve(scan, kernels.Box(1))
func Convolve(src *images.Bitmap, kernel *matrix.Matrix) *images.Bitmap {
	out := images.NewBitmap(src.Width(), src.Height())

	plane := matrix.New(src.Width(), src.Height())
	defer plane.Free()

	for _, c := range rgb {
		images.ChannelToMatrix(src, plane, c)
		filtered := matrix.Convolution(plane, kernel)
		images.MatrixToChannel(filtered, out, c)
		filtered.Free()
	}
	return out
}
