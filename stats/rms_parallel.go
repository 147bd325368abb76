package stats

import (
	"fmt"

	"github.com/cwbudde/algo-qdsp/cluster"
)

// rmsTaskQ8 is the task descriptor shared by every worker of one
// parallel RMS call. It is read-only after construction; the only writes
// during the parallel phase go to disjoint slots of results, each owned
// by exactly one core.
type rmsTaskQ8 struct {
	src      []int8
	fracBits uint
	results  []int8
	nPE      int
}

// worker computes this core's slice of the source block and writes the
// partial RMS into its own results slot. The fork's join acts as the
// barrier: no partial is read before every worker has returned.
func (t *rmsTaskQ8) worker(coreID int) {
	blockSize := len(t.src)
	blockSizeP := (blockSize + t.nPE - 1) / t.nPE
	blockSizeC := blockSizeP

	// The last core absorbs the remainder, which may be smaller than a
	// full slice but never larger.
	if coreID == t.nPE-1 && blockSize%t.nPE != 0 {
		blockSizeC = blockSize % blockSizeP
	}

	start := coreID * blockSizeP
	if start > blockSize {
		start = blockSize
	}

	end := start + blockSizeC
	if end > blockSize {
		end = blockSize
	}

	t.results[coreID] = rmsQ8(t.src[start:end], t.fracBits)
}

// RMSQ8Parallel computes the q8 RMS of src across nPE cores of a compute
// cluster and averages the per-core partials.
//
// The call must be made with a worker-capable [cluster.Context];
// invoking it with the controller context fails with
// [cluster.ErrControllerContext] before any computation. With nPE == 1
// no scratch buffer is allocated and the result equals [RMSQ8] exactly.
// With nPE > 1 the results buffer comes from the cluster scratch arena
// for the duration of the call; exhaustion surfaces as
// [cluster.ErrScratchExhausted].
func RMSQ8Parallel(cc cluster.Context, src []int8, fracBits uint, nPE int) (int8, error) {
	if cc == nil || !cc.WorkerCapable() {
		return 0, fmt.Errorf("stats: parallel rms: %w", cluster.ErrControllerContext)
	}

	if len(src) == 0 {
		return 0, ErrEmptyBlock
	}

	if fracBits > maxFracBitsQ8 {
		return 0, ErrFracBitsRange
	}

	if nPE < 1 {
		return 0, ErrZeroCores
	}

	if nPE > cc.Cores() {
		return 0, fmt.Errorf("%w: %d requested, %d available", ErrTooManyCores, nPE, cc.Cores())
	}

	var single [1]int8

	results := single[:]
	if nPE > 1 {
		buf, err := cc.AllocI8(nPE)
		if err != nil {
			return 0, fmt.Errorf("stats: parallel rms results buffer: %w", err)
		}
		defer cc.FreeI8(buf)

		results = buf
	}

	task := &rmsTaskQ8{
		src:      src,
		fracBits: fracBits,
		results:  results,
		nPE:      nPE,
	}

	if err := cc.Fork(nPE, task.worker); err != nil {
		return 0, fmt.Errorf("stats: parallel rms: %w", err)
	}

	if nPE == 1 {
		return results[0], nil
	}

	var accu int32
	for _, partial := range results {
		accu += int32(partial)
	}

	return int8(accu / int32(nPE)), nil
}
