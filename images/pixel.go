package images

import "github.com/chewxy/math32"

// Pixel is a packed RGBA8 value. The channel layout matches the byte order
// of a pixel in memory (R, G, B, A at increasing addresses) read as a
// little-endian uint32:
//
//	bits  0..7   red
//	bits  8..15  green
//	bits 16..23  blue
//	bits 24..31  alpha
//
// Every bitmap, conversion and mask in this module agrees on this layout.
type Pixel uint32

// Color selects one channel of a Pixel. Its value is the channel's byte
// offset within a pixel.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Alpha
)

// BytesPerPixel is the size of one packed pixel in a bitmap buffer.
const BytesPerPixel = 4

const (
	// White is opaque white, the fill value of ClearRect and ApplyMask.
	White Pixel = 0xFFFFFFFF

	// Opaque is the alpha value written by the matrix to bitmap conversions.
	Opaque uint8 = 0xFF
)

// String returns the channel name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	}
	return "unknown"
}

// NewPixel packs four channel values.
func NewPixel(r, g, b, a uint8) Pixel {
	return Pixel(r) | Pixel(g)<<8 | Pixel(b)<<16 | Pixel(a)<<24
}

func (p Pixel) R() uint8 { return uint8(p) }
func (p Pixel) G() uint8 { return uint8(p >> 8) }
func (p Pixel) B() uint8 { return uint8(p >> 16) }
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// Channel returns the value of channel c.
func (p Pixel) Channel(c Color) uint8 {
	return uint8(p >> (8 * uint(c)))
}

// WithChannel returns p with channel c replaced by v.
func (p Pixel) WithChannel(c Color, v uint8) Pixel {
	shift := 8 * uint(c)
	return p&^(0xFF<<shift) | Pixel(v)<<shift
}

// Grayscale returns the brightness of p in [0, 255]: the integer mean of
// its red, green and blue channels. Alpha is ignored.
func (p Pixel) Grayscale() int {
	return (int(p.R()) + int(p.G()) + int(p.B())) / 3
}

// Lightness returns the HSL lightness of p, (max + min) / 2 over its RGB
// channels, in [0, 255].
func (p Pixel) Lightness() float32 {
	r, g, b := float32(p.R()), float32(p.G()), float32(p.B())
	hi := math32.Max(r, math32.Max(g, b))
	lo := math32.Min(r, math32.Min(g, b))
	return (hi + lo) / 2
}

// DarknessInverse returns the largest of p's RGB channels. It is 255 minus
// the pixel's darkness.
func (p Pixel) DarknessInverse() int {
	return int(max(p.R(), p.G(), p.B()))
}
