// Package stats provides fixed-point statistics kernels for 8-bit
// (q-format) sample vectors: mean-of-squares RMS, signal power, and mean,
// each with a wide accumulator and truncating integer division.
//
// The RMS computation comes in two flavors. [RMSQ8] runs on a single
// core and is always available. [RMSQ8Parallel] partitions the block
// across the cores of a compute cluster, lets each core compute the RMS
// of its own slice, and averages the per-core partials. The average of
// per-slice RMS values is an intentional approximation of the
// whole-block RMS: when the block does not divide evenly across cores
// the two differ, and that difference is accepted library behavior, not
// an error. Changing it would silently alter output across every
// parallel variant, so the reduction must stay as it is.
package stats
