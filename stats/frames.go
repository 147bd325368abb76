package stats

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RMSQ8Frames computes the single-core q8 RMS of every frame in a batch,
// processing up to parallelism frames concurrently on the host. A
// parallelism of 0 or less uses GOMAXPROCS.
//
// This is a host-side convenience for block-based processing pipelines;
// it does not involve the cluster execution model. Any invalid frame
// fails the whole batch.
func RMSQ8Frames(frames [][]int8, fracBits uint, parallelism int) ([]int8, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	out := make([]int8, len(frames))

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, frame := range frames {
		i, frame := i, frame
		g.Go(func() error {
			v, err := RMSQ8(frame, fracBits)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			out[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
