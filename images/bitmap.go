// Package images provides the packed RGBA8 bitmap that image-enhancement
// filters work on, the rectangle operations they share, and the conversions
// between bitmaps and float64 matrices.
//
// A Bitmap is a row-major grid with its origin at the top-left corner. Each
// pixel occupies four bytes in the order red, green, blue, alpha (see Pixel).
// Channels are stored straight, not premultiplied.
package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/shalevy1/libpillowfight/internal/logging"
)

// Bitmap is a width x height RGBA8 image over a byte buffer. The buffer is
// either allocated by NewBitmap or borrowed from the caller (FromBuffer,
// FromRGBA); a borrowed buffer must outlive every use of the bitmap.
type Bitmap struct {
	width    int
	height   int
	pix      []byte
	borrowed bool
}

// NewBitmap allocates a transparent black bitmap.
//
// Arguments:
//   - width: The width in pixels.
//   - height: The height in pixels.
//
// Returns:
//   - *Bitmap: A bitmap that owns its buffer.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		panic(errors.Wrapf(ErrNegativeSize, "%dx%d", width, height))
	}
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// FromBuffer exposes buf as a width x height bitmap without copying.
//
// Arguments:
//   - buf: RGBA8 pixel bytes, row-major, exactly width*height*4 long.
//   - width: The width in pixels.
//   - height: The height in pixels.
//
// Returns:
//   - *Bitmap: A bitmap borrowing buf.
//   - error: ErrBufferSize if the length of buf does not match.
func FromBuffer(buf []byte, width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "%dx%d", width, height)
	}
	if want := width * height * BytesPerPixel; len(buf) != want {
		logging.Logger().Warn("images: rejected pixel buffer",
			"width", width, "height", height, "len", len(buf), "want", want)
		return nil, errors.Wrapf(ErrBufferSize, "%dx%d needs %d bytes, got %d", width, height, want, len(buf))
	}
	return &Bitmap{width: width, height: height, pix: buf, borrowed: true}, nil
}

// FromRGBA returns a bitmap over img. The pixel bytes are shared when img is
// tightly packed and anchored at (0, 0); otherwise they are copied.
//
// image.RGBA is nominally premultiplied; the bytes are taken as they are.
func FromRGBA(img *image.RGBA) *Bitmap {
	r := img.Rect
	w, h := r.Dx(), r.Dy()
	if r.Min == (image.Point{}) && img.Stride == w*BytesPerPixel && len(img.Pix) == w*h*BytesPerPixel {
		return &Bitmap{width: w, height: h, pix: img.Pix, borrowed: true}
	}

	out := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		src := img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out.pix[y*w*BytesPerPixel:(y+1)*w*BytesPerPixel], img.Pix[src:src+w*BytesPerPixel])
	}
	return out
}

// RGBA returns an *image.RGBA sharing b's buffer.
func (b *Bitmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pix,
		Stride: b.width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Size returns (width, height) as a point.
func (b *Bitmap) Size() image.Point { return image.Pt(b.width, b.height) }

// Pix returns the underlying pixel bytes.
func (b *Bitmap) Pix() []byte { return b.pix }

// Borrowed reports whether the buffer belongs to the caller.
func (b *Bitmap) Borrowed() bool { return b.borrowed }

func (b *Bitmap) offset(x, y int) int {
	return (y*b.width + x) * BytesPerPixel
}

// PixelAt returns the packed pixel at (x, y).
func (b *Bitmap) PixelAt(x, y int) Pixel {
	i := b.offset(x, y)
	p := b.pix[i : i+4 : i+4]
	return NewPixel(p[0], p[1], p[2], p[3])
}

// SetPixel stores the packed pixel p at (x, y).
func (b *Bitmap) SetPixel(x, y int, p Pixel) {
	i := b.offset(x, y)
	s := b.pix[i : i+4 : i+4]
	s[0] = p.R()
	s[1] = p.G()
	s[2] = p.B()
	s[3] = p.A()
}

// ChannelAt returns channel c of the pixel at (x, y).
func (b *Bitmap) ChannelAt(x, y int, c Color) uint8 {
	return b.pix[b.offset(x, y)+int(c)]
}

// SetChannel stores v in channel c of the pixel at (x, y).
func (b *Bitmap) SetChannel(x, y int, c Color, v uint8) {
	b.pix[b.offset(x, y)+int(c)] = v
}

// GrayscaleAt returns the grayscale brightness of the pixel at (x, y).
func (b *Bitmap) GrayscaleAt(x, y int) int {
	return b.PixelAt(x, y).Grayscale()
}

// Fill sets every pixel to p.
func (b *Bitmap) Fill(p Pixel) {
	for i := 0; i < len(b.pix); i += BytesPerPixel {
		b.pix[i+0] = p.R()
		b.pix[i+1] = p.G()
		b.pix[i+2] = p.B()
		b.pix[i+3] = p.A()
	}
}

// Clone returns a copy of b that owns its buffer.
func (b *Bitmap) Clone() *Bitmap {
	out := NewBitmap(b.width, b.height)
	copy(out.pix, b.pix)
	return out
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image. Coordinates outside the bitmap yield a
// transparent color.
func (b *Bitmap) At(x, y int) color.Color {
	if !image.Pt(x, y).In(b.Bounds()) {
		return color.NRGBA{}
	}
	p := b.PixelAt(x, y)
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// Set implements draw.Image. Coordinates outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(b.Bounds()) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetPixel(x, y, NewPixel(n.R, n.G, n.B, n.A))
}
