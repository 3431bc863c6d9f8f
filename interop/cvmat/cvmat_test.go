package cvmat

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"github.com/shalevy1/libpillowfight/images"
	"github.com/shalevy1/libpillowfight/matrix"
)

func TestBitmapMatRoundTrip(t *testing.T) {
	src := images.NewBitmap(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			src.SetPixel(x, y, images.NewPixel(uint8(x), uint8(y), uint8(x*y), 255))
		}
	}

	mat, err := BitmapToMat(src)
	require.NoError(t, err)
	defer mat.Close()
	assert.Equal(t, 3, mat.Rows())
	assert.Equal(t, 5, mat.Cols())

	view, err := BitmapFromMat(mat)
	require.NoError(t, err)
	assert.True(t, view.Borrowed())
	assert.Equal(t, images.Checksum(src), images.Checksum(view))

	// The view writes through to the Mat.
	before := Checksum(mat)
	view.ClearRect(0, 0, 1, 1)
	assert.NotEqual(t, before, Checksum(mat))
}

func TestBitmapFromMatRejectsWrongType(t *testing.T) {
	mat := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC1)
	defer mat.Close()

	b, err := BitmapFromMat(mat)
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, ErrMatType))
}

func TestBitmapFromFrame(t *testing.T) {
	frame := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV8UC3)
	defer frame.Close()
	// BGR order in the Mat.
	frame.SetUCharAt(0, 0, 10)
	frame.SetUCharAt(0, 1, 20)
	frame.SetUCharAt(0, 2, 30)

	b, err := BitmapFromFrame(frame)
	require.NoError(t, err)
	assert.False(t, b.Borrowed())
	assert.Equal(t, images.NewPixel(30, 20, 10, 255), b.PixelAt(0, 0))

	gray := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV8UC1)
	defer gray.Close()
	_, err = BitmapFromFrame(gray)
	assert.True(t, errors.Is(err, ErrMatType))
}

func TestMatrixMatRoundTrip(t *testing.T) {
	m := matrix.FromValues(3, 2, []float64{
		1.5, -2, 3,
		4, 5, 1e9,
	})

	mat := MatrixToMat(m)
	defer mat.Close()
	assert.Equal(t, 2, mat.Rows())
	assert.Equal(t, 3, mat.Cols())
	assert.Equal(t, 3.0, mat.GetDoubleAt(0, 2))

	back, err := MatrixFromMat(mat)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}

func TestMatrixFromMatRejectsWrongType(t *testing.T) {
	mat := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV32F)
	defer mat.Close()
	_, err := MatrixFromMat(mat)
	assert.True(t, errors.Is(err, ErrMatType))
}

func TestChecksumEmpty(t *testing.T) {
	mat := gocv.NewMat()
	defer mat.Close()
	assert.Equal(t, "empty", Checksum(mat))
}
