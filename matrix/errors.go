package matrix

import "errors"

var (
	// ErrNegativeSize is raised when a matrix is requested with a negative
	// width or height.
	ErrNegativeSize = errors.New("matrix: negative size")

	// ErrSizeMismatch is raised when a backing slice or a paired operand does
	// not match the expected dimensions.
	ErrSizeMismatch = errors.New("matrix: size mismatch")
)
