package images

import (
	"math"

	"github.com/pkg/errors"

	"github.com/shalevy1/libpillowfight/matrix"
)

// The four conversions below require the bitmap and the matrix to have the
// same size. A mismatch is a programming error and panics with an error
// wrapping ErrSizeMismatch.

func mustMatch(b *Bitmap, m *matrix.Matrix) {
	if b.Size() != m.Size() {
		panic(errors.Wrapf(ErrSizeMismatch, "bitmap %v, matrix %v", b.Size(), m.Size()))
	}
}

// clampByte maps a matrix value onto a channel byte: values below 0 become
// 0, values of 256 and above become 255, anything else is truncated toward
// zero. NaN becomes 0.
func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v >= 256:
		return 255
	}
	return uint8(v)
}

// GrayscaleToMatrix writes the grayscale brightness of every pixel of in to
// the matching cell of out.
func GrayscaleToMatrix(in *Bitmap, out *matrix.Matrix) {
	mustMatch(in, out)
	for y := 0; y < in.height; y++ {
		for x := 0; x < in.width; x++ {
			out.Set(x, y, float64(in.GrayscaleAt(x, y)))
		}
	}
}

// ChannelToMatrix writes channel c of every pixel of in, as a value in
// [0, 255], to the matching cell of out.
func ChannelToMatrix(in *Bitmap, out *matrix.Matrix, c Color) {
	mustMatch(in, out)
	for y := 0; y < in.height; y++ {
		for x := 0; x < in.width; x++ {
			out.Set(x, y, float64(in.ChannelAt(x, y, c)))
		}
	}
}

// MatrixToGrayscale writes every clamped cell of in to the red, green and
// blue channels of the matching pixel of out, and makes the pixel opaque.
func MatrixToGrayscale(in *matrix.Matrix, out *Bitmap) {
	mustMatch(out, in)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			v := clampByte(in.At(x, y))
			out.SetPixel(x, y, NewPixel(v, v, v, Opaque))
		}
	}
}

// MatrixToChannel writes every clamped cell of in to channel c of the
// matching pixel of out.
//
// The alpha channel of every pixel is also set to Opaque, whichever channel
// c is, so a bitmap rebuilt channel by channel always ends up fully opaque.
// Filters rely on this.
func MatrixToChannel(in *matrix.Matrix, out *Bitmap, c Color) {
	mustMatch(out, in)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			out.SetChannel(x, y, c, clampByte(in.At(x, y)))
			out.SetChannel(x, y, Alpha, Opaque)
		}
	}
}
