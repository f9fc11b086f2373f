package fftcache

import "github.com/r2it-git/fftcache/internal/engine"

// CostTier is the caller-chosen tradeoff between planning time and
// steady-state execution speed. The canonical definition is in
// internal/engine.
type CostTier = engine.Tier

const (
	// Thorough benchmarks candidate execution strategies at
	// construction time for best steady-state throughput.
	Thorough CostTier = engine.TierThorough

	// Quick uses a fast heuristic, trading steady-state speed for
	// near-instant construction.
	Quick CostTier = engine.TierQuick
)

// Direction selects the transform a Handle performs.
type Direction int

const (
	// Backward is the unscaled inverse complex transform.
	Backward Direction = iota
	// Forward is the unscaled forward complex transform.
	Forward
	// ComplexToReal is the unscaled half-spectrum to real transform.
	ComplexToReal
	// RealToComplex is the unscaled real to half-spectrum transform.
	RealToComplex
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	case ComplexToReal:
		return "complex-to-real"
	case RealToComplex:
		return "real-to-complex"
	default:
		return "unknown"
	}
}
