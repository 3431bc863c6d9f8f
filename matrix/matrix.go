// Package matrix provides the double-precision 2D matrix used for the
// intermediate numeric work of image filters: grayscale intensities, channel
// planes and convolution results.
//
// Values are stored row-major, so the cell at column x and row y lives at
// index y*width + x. Every operation that produces a matrix returns a newly
// allocated one and leaves its inputs untouched.
//
// Shape violations are programmer errors and panic with an error wrapping
// ErrNegativeSize or ErrSizeMismatch.
package matrix

import (
	"image"
	"math"

	"github.com/pkg/errors"

	"github.com/shalevy1/libpillowfight/internal/logging"
)

// Matrix is a width x height grid of float64 values.
type Matrix struct {
	width  int
	height int
	values []float64
}

// New allocates a zero-filled matrix.
//
// Arguments:
//   - width: number of columns.
//   - height: number of rows.
//
// Returns:
//   - *Matrix: the new matrix, owned by the caller.
func New(width, height int) *Matrix {
	checkSize(width, height)
	return &Matrix{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// FromValues wraps values as a width x height matrix without copying.
// It panics if len(values) != width*height.
func FromValues(width, height int, values []float64) *Matrix {
	checkSize(width, height)
	if len(values) != width*height {
		panic(errors.Wrapf(ErrSizeMismatch, "%d values for a %dx%d matrix", len(values), width, height))
	}
	return &Matrix{width: width, height: height, values: values}
}

func checkSize(width, height int) {
	if width < 0 || height < 0 {
		panic(errors.Wrapf(ErrNegativeSize, "%dx%d", width, height))
	}
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Size returns (width, height) as a point.
func (m *Matrix) Size() image.Point { return image.Pt(m.width, m.height) }

// Values returns the row-major backing slice.
func (m *Matrix) Values() []float64 { return m.values }

// At returns the value at column x, row y.
func (m *Matrix) At(x, y int) float64 {
	return m.values[y*m.width+x]
}

// Set stores v at column x, row y.
func (m *Matrix) Set(x, y int, v float64) {
	m.values[y*m.width+x] = v
}

// Free releases the backing buffer. The matrix becomes 0x0 and must not be
// used again; a second Free is a no-op.
func (m *Matrix) Free() {
	if m.values == nil {
		logging.Logger().Debug("matrix: free on released matrix")
		return
	}
	m.values = nil
	m.width = 0
	m.height = 0
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := New(m.width, m.height)
	copy(out.values, m.values)
	return out
}

// Equal reports whether m and o have the same size and identical values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i, v := range m.values {
		if o.values[i] != v {
			return false
		}
	}
	return true
}

// Normalize returns a copy of m with its values linearly rescaled from
// [min(m), max(m)] to [outMin, outMax]. A constant matrix maps to outMin.
func (m *Matrix) Normalize(outMin, outMax float64) *Matrix {
	out := New(m.width, m.height)
	if len(m.values) == 0 {
		return out
	}

	inMin, inMax := math.Inf(1), math.Inf(-1)
	for _, v := range m.values {
		inMin = math.Min(inMin, v)
		inMax = math.Max(inMax, v)
	}

	span := inMax - inMin
	for i, v := range m.values {
		if span == 0 {
			out.values[i] = outMin
			continue
		}
		out.values[i] = outMin + (v-inMin)*(outMax-outMin)/span
	}
	return out
}
