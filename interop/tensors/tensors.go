// Package tensors bridges matrix.Matrix and gorgonia dense tensors so that
// intensity planes can feed tensor-based models and come back.
//
// A matrix maps to a 2-D tensor of shape (height, width): rows first, like
// the matrix's own row-major storage.
package tensors

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/shalevy1/libpillowfight/matrix"
)

var (
	// ErrTensorShape is returned for tensors that are not 2-D or have an
	// empty dimension.
	ErrTensorShape = errors.New("tensors: unsupported shape")

	// ErrTensorType is returned for tensors whose element type is not float64.
	ErrTensorType = errors.New("tensors: unsupported element type")
)

// FromMatrix returns a (height, width) float64 tensor backed by m's values.
// No data is copied: writes through either side are visible to the other.
//
// Returns:
//   - *tensor.Dense: The tensor view.
//   - error: ErrTensorShape if m has no cells.
func FromMatrix(m *matrix.Matrix) (*tensor.Dense, error) {
	if m.Width() == 0 || m.Height() == 0 {
		return nil, errors.Wrapf(ErrTensorShape, "empty matrix %v", m.Size())
	}
	return tensor.New(
		tensor.WithShape(m.Height(), m.Width()),
		tensor.WithBacking(m.Values()),
	), nil
}

// ToMatrix copies a 2-D float64 tensor into a new matrix. Views (transposed
// or sliced tensors) are read through their own indexing.
func ToMatrix(t *tensor.Dense) (*matrix.Matrix, error) {
	if t.Dtype() != tensor.Float64 {
		return nil, errors.Wrapf(ErrTensorType, "got %v", t.Dtype())
	}
	shape := t.Shape()
	if t.Dims() != 2 || shape[0] == 0 || shape[1] == 0 {
		return nil, errors.Wrapf(ErrTensorShape, "got %v", shape)
	}

	rows, cols := shape[0], shape[1]
	m := matrix.New(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v, err := t.At(y, x)
			if err != nil {
				return nil, errors.Wrapf(err, "tensors: read (%d,%d)", y, x)
			}
			m.Set(x, y, v.(float64))
		}
	}
	return m, nil
}
