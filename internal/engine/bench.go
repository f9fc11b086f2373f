package engine

import "time"

// chooseStrategy picks the DFT strategy for a length-n kernel. Wisdom
// wins if present. The quick tier falls back to a heuristic; the
// thorough tier measures every admissible candidate and records the
// winner so the cost is paid once per length.
func chooseStrategy(n int, tier Tier) Strategy {
	if s, ok := DefaultWisdom.Lookup(n); ok {
		return s
	}

	if tier == TierQuick {
		if isPow2(n) {
			return StrategyRadix2
		}

		return StrategyBluestein
	}

	best := measureBest(n)
	DefaultWisdom.Record(n, best)

	return best
}

var allStrategies = []Strategy{StrategyRadix2, StrategyBluestein}

// measureBest micro-benchmarks each admissible strategy on throwaway
// buffers and returns the fastest. Runs under the planner lock like the
// rest of planning, so wall-clock timing is adequate.
func measureBest(n int) Strategy {
	src := make([]complex128, n)
	dst := make([]complex128, n)

	for i := range src {
		src[i] = complex(float64(i%7)-3, float64(i%5)-2)
	}

	iters := benchIters(n)
	best := StrategyBluestein
	bestTime := time.Duration(1<<63 - 1)

	for _, s := range allStrategies {
		if !s.admissible(n) {
			continue
		}

		k := newKernel(n, s, wideVectors)
		k.forward(dst, src) // warm the tables before timing

		start := time.Now()
		for i := 0; i < iters; i++ {
			k.forward(dst, src)
		}

		if elapsed := time.Since(start); elapsed < bestTime {
			bestTime = elapsed
			best = s
		}
	}

	return best
}

// benchIters scales iteration count inversely with n so measurement
// stays cheap for large transforms but stable for small ones.
func benchIters(n int) int {
	iters := (1 << 16) / (n + 1)
	if iters < 4 {
		return 4
	}

	return iters
}
