// Package cvmat moves pixel and matrix data between libpillowfight and
// OpenCV (via gocv).
//
// BitmapFromMat borrows the memory of a CV_8UC4 Mat, which is the gocv
// counterpart of exposing a foreign buffer as a bitmap: the Mat must stay
// open while the bitmap is in use. Every other function copies.
//
// OpenCV frames are usually BGR or BGRA. BitmapFromMat takes the four bytes
// of a pixel as R, G, B, A; BitmapFromFrame converts a 3-channel BGR frame
// first.
package cvmat

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/shalevy1/libpillowfight/images"
	"github.com/shalevy1/libpillowfight/internal/logging"
	"github.com/shalevy1/libpillowfight/matrix"
)

// ErrMatType is returned when a Mat has the wrong element type or is not
// continuous in memory.
var ErrMatType = errors.New("cvmat: unsupported mat type")

// BitmapFromMat exposes the bytes of a continuous CV_8UC4 Mat as a bitmap.
//
// Arguments:
//   - mat: The source Mat; it must outlive the returned bitmap.
//
// Returns:
//   - *images.Bitmap: A bitmap borrowing the Mat's memory.
//   - error: ErrMatType for any other Mat type.
func BitmapFromMat(mat gocv.Mat) (*images.Bitmap, error) {
	if mat.Type() != gocv.MatTypeCV8UC4 || !mat.IsContinuous() {
		return nil, errors.Wrapf(ErrMatType, "want continuous CV_8UC4, got %v", mat.Type())
	}
	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "cvmat: mat data")
	}
	return images.FromBuffer(data, mat.Cols(), mat.Rows())
}

// BitmapFromFrame converts a 3-channel BGR frame, as returned by
// gocv.IMDecode or a VideoCapture, into a new opaque bitmap.
func BitmapFromFrame(frame gocv.Mat) (*images.Bitmap, error) {
	if frame.Type() != gocv.MatTypeCV8UC3 {
		return nil, errors.Wrapf(ErrMatType, "want CV_8UC3, got %v", frame.Type())
	}

	rgba := gocv.NewMat()
	defer rgba.Close()
	gocv.CvtColor(frame, &rgba, gocv.ColorBGRToRGBA)
	if rgba.Empty() && !frame.Empty() {
		return nil, errors.New("cvmat: convert BGR to RGBA failed")
	}

	view, err := BitmapFromMat(rgba)
	if err != nil {
		return nil, err
	}
	// rgba is closed on return; hand back a copy.
	return view.Clone(), nil
}

// BitmapToMat copies b into a new CV_8UC4 Mat. The caller must Close it.
func BitmapToMat(b *images.Bitmap) (gocv.Mat, error) {
	mat := gocv.NewMatWithSize(b.Height(), b.Width(), gocv.MatTypeCV8UC4)
	if b.Width() == 0 || b.Height() == 0 {
		return mat, nil
	}
	data, err := mat.DataPtrUint8()
	if err != nil {
		mat.Close()
		return gocv.NewMat(), errors.Wrap(err, "cvmat: mat data")
	}
	copy(data, b.Pix())
	return mat, nil
}

// MatrixToMat copies m into a new single-channel CV_64F Mat with m.Height()
// rows and m.Width() columns. The caller must Close it.
func MatrixToMat(m *matrix.Matrix) gocv.Mat {
	mat := gocv.NewMatWithSize(m.Height(), m.Width(), gocv.MatTypeCV64F)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			mat.SetDoubleAt(y, x, m.At(x, y))
		}
	}
	return mat
}

// MatrixFromMat copies a single-channel CV_64F Mat into a new matrix.
func MatrixFromMat(mat gocv.Mat) (*matrix.Matrix, error) {
	if mat.Type() != gocv.MatTypeCV64F {
		return nil, errors.Wrapf(ErrMatType, "want CV_64F, got %v", mat.Type())
	}
	logging.Logger().Debug("cvmat: matrix from mat", "rows", mat.Rows(), "cols", mat.Cols())

	m := matrix.New(mat.Cols(), mat.Rows())
	for y := 0; y < mat.Rows(); y++ {
		for x := 0; x < mat.Cols(); x++ {
			m.Set(x, y, mat.GetDoubleAt(y, x))
		}
	}
	return m, nil
}

// Checksum generates a deterministic checksum of a Mat's bytes, for
// verifying that a round trip through OpenCV left the data untouched.
// It returns "empty" for an empty Mat.
func Checksum(mat gocv.Mat) string {
	if mat.Empty() {
		return "empty"
	}

	data, _ := mat.DataPtrUint8()
	hash := md5.New()
	hash.Write(data)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
