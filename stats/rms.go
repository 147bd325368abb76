package stats

// RMSQ8 computes the fixed-point mean-of-squares of an 8-bit sample
// block: each sample is squared, right-shifted by fracBits, and summed
// in a 32-bit accumulator; the sum is divided by the block length with
// truncation toward zero and narrowed back to int8.
//
// fracBits rescales the doubled q-format of the squared products; 0
// reduces the kernel to an unscaled mean of squares. Values above 14
// would clear every term and are rejected.
func RMSQ8(src []int8, fracBits uint) (int8, error) {
	if len(src) == 0 {
		return 0, ErrEmptyBlock
	}

	if fracBits > maxFracBitsQ8 {
		return 0, ErrFracBitsRange
	}

	return rmsQ8(src, fracBits), nil
}

// rmsQ8 is the unchecked single-core kernel. An empty slice contributes
// a zero partial; validated entry points never pass one, but parallel
// workers may when the team is larger than the block.
func rmsQ8(src []int8, fracBits uint) int8 {
	if len(src) == 0 {
		return 0
	}

	var accu int32

	// Two samples per iteration; matches the plain loop term for term.
	n := len(src)
	for i := 0; i+1 < n; i += 2 {
		t1 := int32(src[i])
		t2 := int32(src[i+1])
		accu += (t1 * t1) >> fracBits
		accu += (t2 * t2) >> fracBits
	}

	if n%2 == 1 {
		t := int32(src[n-1])
		accu += (t * t) >> fracBits
	}

	return int8(accu / int32(n))
}

// PowerQ8 computes the fixed-point signal power of an 8-bit sample
// block: the sum of squares, each term right-shifted by fracBits,
// accumulated in 32 bits. Unlike [RMSQ8] the sum is not divided by the
// block length.
func PowerQ8(src []int8, fracBits uint) (int32, error) {
	if len(src) == 0 {
		return 0, ErrEmptyBlock
	}

	if fracBits > maxFracBitsQ8 {
		return 0, ErrFracBitsRange
	}

	var accu int32
	for _, s := range src {
		t := int32(s)
		accu += (t * t) >> fracBits
	}

	return accu, nil
}

// MeanQ8 computes the arithmetic mean of an 8-bit sample block with a
// 32-bit accumulator, truncated toward zero and narrowed to int8.
func MeanQ8(src []int8) (int8, error) {
	if len(src) == 0 {
		return 0, ErrEmptyBlock
	}

	var accu int32
	for _, s := range src {
		accu += int32(s)
	}

	return int8(accu / int32(len(src))), nil
}
