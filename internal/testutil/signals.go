// Package testutil provides deterministic q-format signal generators for
// tests and benchmarks.
package testutil

import "math/rand"

// DeterministicNoiseQ8 generates uniform int8 noise in [-amp, amp] with a
// fixed seed for reproducibility.
func DeterministicNoiseQ8(seed int64, amp int8, length int) []int8 {
	out := make([]int8, length)
	rng := rand.New(rand.NewSource(seed))
	span := 2*int(amp) + 1

	for i := range out {
		out[i] = int8(rng.Intn(span) - int(amp))
	}

	return out
}

// DCQ8 generates a constant-valued q8 signal.
func DCQ8(value int8, length int) []int8 {
	out := make([]int8, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// OnesQ8 returns a slice of length n filled with 1.
func OnesQ8(n int) []int8 {
	return DCQ8(1, n)
}

// SquareQ8 generates a +value/-value alternating square wave.
func SquareQ8(value int8, length int) []int8 {
	out := make([]int8, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = value
		} else {
			out[i] = -value
		}
	}

	return out
}

// RampQ8 generates a sawtooth ramp cycling through [lo, hi].
func RampQ8(lo, hi int8, length int) []int8 {
	out := make([]int8, length)
	span := int(hi) - int(lo) + 1

	for i := range out {
		out[i] = int8(int(lo) + i%span)
	}

	return out
}
