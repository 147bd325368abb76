// Command rmsinfo computes the fixed-point RMS of a deterministic test
// signal on a simulated compute cluster and shows how the parallel
// reduction behaves across core counts.
//
// Usage:
//
//	rmsinfo [flags]
//
// Examples:
//
//	rmsinfo
//	rmsinfo -size 4096 -frac 7
//	rmsinfo -size 1000 -cores 4 -seed 7
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-qdsp/cluster"
	"github.com/cwbudde/algo-qdsp/internal/testutil"
	"github.com/cwbudde/algo-qdsp/stats"
)

func main() {
	var (
		size  = flag.Int("size", 1024, "block size in samples")
		frac  = flag.Uint("frac", 7, "fractional bits (right shift of squared samples)")
		cores = flag.Int("cores", 8, "cluster core count")
		seed  = flag.Int64("seed", 1, "noise generator seed")
		amp   = flag.Int("amp", 127, "noise amplitude (1..127)")
	)
	flag.Parse()

	if *amp < 1 || *amp > 127 {
		fmt.Fprintln(os.Stderr, "rmsinfo: -amp must be in 1..127")
		os.Exit(2)
	}

	if *cores < 1 {
		fmt.Fprintln(os.Stderr, "rmsinfo: -cores must be at least 1")
		os.Exit(2)
	}

	src := testutil.DeterministicNoiseQ8(*seed, int8(*amp), *size)

	serial, err := stats.RMSQ8(src, *frac)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rmsinfo: %v\n", err)
		os.Exit(1)
	}

	c, err := cluster.New(cluster.WithCores(*cores))
	if err != nil {
		fmt.Fprintf(os.Stderr, "rmsinfo: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("block size %d, fracBits %d, single-core rms %d\n\n", *size, *frac, serial)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CORES\tRMS\tEXACT\t")

	for nPE := 1; nPE <= c.Cores(); nPE++ {
		rms, err := stats.RMSQ8Parallel(c, src, *frac, nPE)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rmsinfo: cores=%d: %v\n", nPE, err)
			os.Exit(1)
		}

		exact := ""
		if rms == serial {
			exact = "yes"
		}

		fmt.Fprintf(w, "%d\t%d\t%s\t\n", nPE, rms, exact)
	}

	w.Flush()
}
