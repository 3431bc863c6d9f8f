package tensors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/shalevy1/libpillowfight/matrix"
)

func TestFromMatrixSharesMemory(t *testing.T) {
	m := matrix.FromValues(3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	d, err := FromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, d.Shape())

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, d.SetAt(9.0, 0, 1))
	assert.Equal(t, 9.0, m.At(1, 0))
}

func TestFromMatrixEmpty(t *testing.T) {
	_, err := FromMatrix(matrix.New(0, 3))
	assert.True(t, errors.Is(err, ErrTensorShape))
}

func TestToMatrix(t *testing.T) {
	d := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]float64{1, 2, 3, 4}))

	m, err := ToMatrix(d)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values())

	// Copy, not a view.
	m.Set(0, 0, 100)
	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestRoundTrip(t *testing.T) {
	m := matrix.FromValues(4, 3, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})
	d, err := FromMatrix(m)
	require.NoError(t, err)

	back, err := ToMatrix(d)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}

func TestToMatrixRejects(t *testing.T) {
	tests := []struct {
		name   string
		tensor *tensor.Dense
		target error
	}{
		{"Float32", tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]float32{1, 2, 3, 4})), ErrTensorType},
		{"Three dims", tensor.New(tensor.WithShape(1, 2, 2), tensor.WithBacking([]float64{1, 2, 3, 4})), ErrTensorShape},
		{"Vector", tensor.New(tensor.WithShape(4), tensor.WithBacking([]float64{1, 2, 3, 4})), ErrTensorShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ToMatrix(tt.tensor)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}
