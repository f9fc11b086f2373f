// Command fftplan builds transform handles for a list of sizes, reports
// how long planning took at each cost tier, and optionally saves the
// measured strategy choices for reuse via fftcache.ImportWisdom.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/r2it-git/fftcache"
)

func main() {
	var (
		sizeList   = pflag.String("sizes", "64,100,1024,4096", "comma-separated transform sizes")
		howmany    = pflag.Int("howmany", 1, "transforms per batch")
		realKind   = pflag.Bool("real", false, "plan real-to-complex transforms instead of complex")
		iters      = pflag.Int("iters", 100, "execute iterations per timing")
		wisdomFile = pflag.String("wisdom", "", "export wisdom to this file after planning")
		seed       = pflag.Int64("seed", 1, "rng seed for the timing signal")
	)
	pflag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stderr, "no sizes specified")
		os.Exit(2)
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("howmany=%d real=%v iters=%d\n", *howmany, *realKind, *iters)
	fmt.Printf("%8s  %10s  %10s  %14s  %14s\n", "size", "tier", "strategy", "plan time", "ns/op")

	for _, n := range sizes {
		for _, tier := range []fftcache.CostTier{fftcache.Quick, fftcache.Thorough} {
			if err := run(rnd, n, *howmany, *realKind, *iters, tier); err != nil {
				fmt.Fprintf(os.Stderr, "size %d (%s): %v\n", n, tier, err)
				os.Exit(1)
			}
		}
	}

	if *wisdomFile != "" {
		if err := fftcache.ExportWisdom(*wisdomFile); err != nil {
			fmt.Fprintf(os.Stderr, "wisdom export: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("wisdom written to %s (%d entries)\n", *wisdomFile, fftcache.WisdomLen())
	}

	fftcache.Cleanup()
}

func run(rnd *rand.Rand, n, howmany int, realKind bool, iters int, tier fftcache.CostTier) error {
	start := time.Now()

	var (
		h   *fftcache.Handle
		err error
	)

	if realKind {
		h, err = fftcache.NewManyReal(n, howmany, tier)
	} else {
		h, err = fftcache.NewMany(n, howmany, tier)
	}

	if err != nil {
		return err
	}

	defer h.Destroy()

	planTime := time.Since(start)

	var perOp time.Duration
	if realKind {
		perOp = timeReal(rnd, h, n, howmany, iters)
	} else {
		perOp = timeComplex(rnd, h, n, howmany, iters)
	}

	fmt.Printf("%8d  %10s  %10s  %14s  %14d\n", n, tier, h.Strategy(), planTime, perOp.Nanoseconds())

	return nil
}

func timeComplex(rnd *rand.Rand, h *fftcache.Handle, n, howmany, iters int) time.Duration {
	in := make([]complex128, n*howmany)
	out := make([]complex128, n*howmany)

	for i := range in {
		in[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	h.Transform(fftcache.Forward, in, out) // warm up

	start := time.Now()
	for i := 0; i < iters; i++ {
		h.Transform(fftcache.Forward, in, out)
	}

	return time.Since(start) / time.Duration(iters)
}

func timeReal(rnd *rand.Rand, h *fftcache.Handle, n, howmany, iters int) time.Duration {
	dist := (n/2 + 1) * 2
	in := make([]float64, dist*howmany)
	out := make([]float64, dist*howmany)

	for b := 0; b < howmany; b++ {
		for j := 0; j < n; j++ {
			in[b*dist+j] = rnd.Float64()*2 - 1
		}
	}

	h.TransformReal(fftcache.RealToComplex, in, out) // warm up

	start := time.Now()
	for i := 0; i < iters; i++ {
		h.TransformReal(fftcache.RealToComplex, in, out)
	}

	return time.Since(start) / time.Duration(iters)
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "skipping invalid size %q\n", part)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}
