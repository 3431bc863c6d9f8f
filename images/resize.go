package images

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Resize resamples b to width x height with a Lanczos3 filter and returns
// the result as a new bitmap that owns its buffer. b is not modified.
//
// Arguments:
//   - b: The source bitmap.
//   - width: The target width in pixels.
//   - height: The target height in pixels.
//
// Returns:
//   - *Bitmap: The resized bitmap.
//
// Example:
//
//	small := images.Resize(scan, scan.Width()/2, scan.Height()/2)
func Resize(b *Bitmap, width, height int) *Bitmap {
	if width < 0 || height < 0 {
		panic(errors.Wrapf(ErrNegativeSize, "resize to %dx%d", width, height))
	}
	if width == 0 || height == 0 || b.width == 0 || b.height == 0 {
		return NewBitmap(width, height)
	}

	// Same size: copy so the caller always gets a fresh bitmap.
	if b.width == width && b.height == height {
		return b.Clone()
	}

	resized := resize.Resize(uint(width), uint(height), b, resize.Lanczos3)
	return fromImage(resized)
}

// fromImage copies any image.Image into a new bitmap anchored at (0, 0).
func fromImage(img image.Image) *Bitmap {
	r := img.Bounds()
	out := NewBitmap(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.Set(x-r.Min.X, y-r.Min.Y, img.At(x, y))
		}
	}
	return out
}
