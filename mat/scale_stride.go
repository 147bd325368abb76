// Package mat provides strided fixed-point matrix kernels. Matrices are
// stored row-major in flat slices; a stride gives the element distance
// between the starts of consecutive rows, allowing kernels to operate on
// sub-matrices of a larger allocation.
package mat

import (
	"errors"
	"fmt"
)

var (
	ErrBadShape    = errors.New("mat: rows and cols must be non-negative")
	ErrBadStride   = errors.New("mat: stride must be at least the column count")
	ErrShortBuffer = errors.New("mat: buffer too short for shape and stride")
)

// ScaleStrideI16 scales every element of a rows x cols int16 matrix:
//
//	dst[m*strideDst+n] = int16((int32(src[m*strideSrc+n]) * int32(scaleFactor)) >> shift)
//
// The product is widened to 32 bits before the arithmetic right shift,
// then truncated to int16. src and dst may use different strides; they
// must not overlap unless the strides are equal and dst aliases src.
func ScaleStrideI16(dst, src []int16, rows, cols, strideDst, strideSrc int, scaleFactor int16, shift uint) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	if strideSrc < cols || strideDst < cols {
		return ErrBadStride
	}

	if rows == 0 || cols == 0 {
		return nil
	}

	if need := (rows-1)*strideSrc + cols; len(src) < need {
		return fmt.Errorf("%w: src has %d elements, need %d", ErrShortBuffer, len(src), need)
	}

	if need := (rows-1)*strideDst + cols; len(dst) < need {
		return fmt.Errorf("%w: dst has %d elements, need %d", ErrShortBuffer, len(dst), need)
	}

	for m := 0; m < rows; m++ {
		srcRow := src[m*strideSrc : m*strideSrc+cols]
		dstRow := dst[m*strideDst : m*strideDst+cols]

		for n, v := range srcRow {
			dstRow[n] = int16((int32(v) * int32(scaleFactor)) >> shift)
		}
	}

	return nil
}
