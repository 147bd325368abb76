package stats

import "errors"

var (
	ErrEmptyBlock    = errors.New("stats: block must contain at least one sample")
	ErrFracBitsRange = errors.New("stats: fractional bits exceed squared-sample width")
	ErrZeroCores     = errors.New("stats: core count must be at least one")
	ErrTooManyCores  = errors.New("stats: core count exceeds cluster cores")
)

// maxFracBitsQ8 is the widest meaningful right shift for squared q8
// samples: (-128)^2 = 16384 occupies 15 bits, so a shift past 14 clears
// every term of the accumulation.
const maxFracBitsQ8 = 14
