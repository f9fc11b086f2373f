package engine

// Tier controls how much work the planner invests when it picks an
// execution strategy for a new transform shape.
type Tier uint8

const (
	// TierThorough benchmarks every admissible strategy at planning
	// time and records the winner in the wisdom cache.
	TierThorough Tier = iota
	// TierQuick picks a strategy by heuristic, trading steady-state
	// speed for near-instant planning.
	TierQuick
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierThorough:
		return "thorough"
	case TierQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// Strategy identifies one of the engine's DFT algorithms.
type Strategy uint8

const (
	StrategyAuto      Strategy = iota // let the planner decide
	StrategyRadix2                    // iterative radix-2 DIT, power-of-two lengths only
	StrategyBluestein                 // chirp-z convolution, any length
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyRadix2:
		return "radix2"
	case StrategyBluestein:
		return "bluestein"
	default:
		return "unknown"
	}
}

// strategyFromName is the inverse of String, used by wisdom import.
func strategyFromName(name string) (Strategy, bool) {
	switch name {
	case "radix2":
		return StrategyRadix2, true
	case "bluestein":
		return StrategyBluestein, true
	default:
		return StrategyAuto, false
	}
}

// admissible reports whether the strategy can compute a length-n DFT.
func (s Strategy) admissible(n int) bool {
	switch s {
	case StrategyRadix2:
		return isPow2(n)
	case StrategyBluestein:
		return n >= 1
	default:
		return false
	}
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPow2(n int) int {
	m := 1
	for m < n {
		m <<= 1
	}

	return m
}
