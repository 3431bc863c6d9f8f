package images

import "image"

// Rectangle is an axis-aligned region given by two inclusive corners. Both
// corner pixels belong to the region.
//
// The corners need not be ordered; operations call Canon before use, so
// Rectangle{A: (5, 5), B: (1, 1)} covers the same pixels as
// Rectangle{A: (1, 1), B: (5, 5)}.
type Rectangle struct {
	A, B image.Point
}

// Rect is shorthand for Rectangle{image.Pt(x0, y0), image.Pt(x1, y1)}.Canon().
func Rect(x0, y0, x1, y1 int) Rectangle {
	return Rectangle{A: image.Pt(x0, y0), B: image.Pt(x1, y1)}.Canon()
}

// Canon returns r with A as the top-left and B as the bottom-right corner.
func (r Rectangle) Canon() Rectangle {
	if r.A.X > r.B.X {
		r.A.X, r.B.X = r.B.X, r.A.X
	}
	if r.A.Y > r.B.Y {
		r.A.Y, r.B.Y = r.B.Y, r.A.Y
	}
	return r
}

// Contains reports whether p lies inside r, edges included. r must be
// canonical.
func (r Rectangle) Contains(p image.Point) bool {
	return r.A.X <= p.X && p.X <= r.B.X && r.A.Y <= p.Y && p.Y <= r.B.Y
}

// ClearRect paints the half-open region [left, right) x [top, bottom) with
// opaque White. Bounds outside the bitmap are clipped, never reported.
func (b *Bitmap) ClearRect(left, top, right, bottom int) {
	left = max(left, 0)
	top = max(top, 0)
	right = min(right, b.width)
	bottom = min(bottom, b.height)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			b.SetPixel(x, y, White)
		}
	}
}

// CountPixelsRect counts the pixels of the inclusive region
// [left, right] x [top, bottom] whose grayscale brightness lies in
// [0, maxBrightness].
//
// Bounds are clamped to the bitmap, so a region reaching past an edge counts
// only the pixels that exist.
func (b *Bitmap) CountPixelsRect(left, top, right, bottom, maxBrightness int) int {
	left = max(left, 0)
	top = max(top, 0)
	right = min(right, b.width-1)
	bottom = min(bottom, b.height-1)

	count := 0
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			v := b.GrayscaleAt(x, y)
			if v >= 0 && v <= maxBrightness {
				count++
			}
		}
	}
	return count
}

// ApplyMask keeps only the pixels inside mask: every pixel outside it, on
// either axis, becomes opaque White. Applying the same mask twice changes
// nothing the second time.
func (b *Bitmap) ApplyMask(mask Rectangle) {
	mask = mask.Canon()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if !mask.Contains(image.Pt(x, y)) {
				b.SetPixel(x, y, White)
			}
		}
	}
}
