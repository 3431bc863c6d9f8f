package images

import "errors"

var (
	// ErrBufferSize is returned when a foreign pixel buffer does not hold
	// exactly width*height*4 bytes.
	ErrBufferSize = errors.New("images: buffer size does not match dimensions")

	// ErrNegativeSize is raised when a bitmap is requested with a negative
	// width or height.
	ErrNegativeSize = errors.New("images: negative size")

	// ErrSizeMismatch is raised when a bitmap and a matrix passed to a
	// conversion differ in size.
	ErrSizeMismatch = errors.New("images: bitmap and matrix sizes differ")
)
