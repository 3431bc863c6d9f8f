// Package libpillowfight is the pixel and matrix foundation of a set of
// image-enhancement filters (binarization, contrast enhancement, scan
// cleanup).
//
// The filters themselves live elsewhere. This module provides what they
// share:
//
//   - images: a packed RGBA8 Bitmap, the Pixel layout and White sentinel,
//     rectangle operations (ClearRect, CountPixelsRect, ApplyMask) and the
//     conversions between bitmaps and matrices.
//   - matrix: a float64 Matrix with Transpose and causal 2D Convolution.
//   - images/kernels: convolution kernels and per-channel bitmap filtering.
//   - interop/cvmat and interop/tensors: bridges to gocv and gorgonia.
//
// All operations are synchronous and keep no state between calls. The
// caller owns every bitmap and matrix it creates or receives.
//
// Example:
//
//	b, err := images.FromBuffer(pix, width, height)
//	if err != nil {
//	    return err
//	}
//	gray := matrix.New(width, height)
//	defer gray.Free()
//	images.GrayscaleToMatrix(b, gray)
//	smooth := matrix.Convolution(gray, kernels.Box(1))
//	defer smooth.Free()
//	images.MatrixToGrayscale(smooth, b)
package libpillowfight
