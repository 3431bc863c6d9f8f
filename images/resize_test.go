package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResize(t *testing.T) {
	src := NewBitmap(40, 20)
	src.Fill(White)

	out := Resize(src, 10, 5)

	assert.Equal(t, 10, out.Width())
	assert.Equal(t, 5, out.Height())
	assert.False(t, out.Borrowed())
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			p := out.PixelAt(x, y)
			assert.InDelta(t, 255, int(p.R()), 1)
			assert.InDelta(t, 255, int(p.A()), 1)
		}
	}
}

func TestResizeSameSizeCopies(t *testing.T) {
	src := newTestBitmap(4, 4)
	out := Resize(src, 4, 4)
	assert.Equal(t, Checksum(src), Checksum(out))
	out.SetPixel(0, 0, White)
	assert.NotEqual(t, White, src.PixelAt(0, 0))
}

func TestResizeDegenerate(t *testing.T) {
	assert.Equal(t, 0, Resize(newTestBitmap(4, 4), 0, 3).Width())
	assert.Equal(t, 6, Resize(NewBitmap(0, 0), 6, 2).Width())
	assert.Panics(t, func() { Resize(newTestBitmap(2, 2), -1, 2) })
}
