// Package cmplxmath provides elementwise complex math kernels over
// interleaved fixed-point vectors. Complex data is stored as
// (real, imag, real, imag, ...), so a vector of n complex samples
// occupies 2*n elements.
package cmplxmath

import (
	"errors"
	"math"
)

var (
	ErrLengthMismatch = errors.New("cmplxmath: source and destination lengths differ")
	ErrOddLength      = errors.New("cmplxmath: interleaved complex data must have even length")
)

// ConjI8 writes the complex conjugate of src into dst: real parts are
// copied, imaginary parts are negated. An imaginary part of
// math.MinInt8 has no 8-bit negation and saturates to math.MaxInt8.
//
// dst and src must have the same even length. dst may alias src for an
// in-place conjugate.
func ConjI8(dst, src []int8) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	if len(src)%2 != 0 {
		return ErrOddLength
	}

	for i := 0; i < len(src); i += 2 {
		dst[i] = src[i]

		im := src[i+1]
		if im == math.MinInt8 {
			dst[i+1] = math.MaxInt8
		} else {
			dst[i+1] = -im
		}
	}

	return nil
}
