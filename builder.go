package fftcache

import (
	"fmt"

	"github.com/r2it-git/fftcache/internal/engine"
)

// New builds a handle for a 1-D complex transform of length n.
func New(n int, tier CostTier) (*Handle, error) {
	return NewMany(n, 1, tier)
}

// NewMany builds a handle for howmany contiguous 1-D complex
// transforms of length n, executed in one call.
func NewMany(n, howmany int, tier CostTier) (*Handle, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}

	if howmany < 1 {
		return nil, fmt.Errorf("%w: howmany=%d", ErrInvalidCount, howmany)
	}

	h := &Handle{ndim: 1, n: n, howmany: howmany}

	plannerMu.Lock()

	// Scratch sized for the full batch plus a small margin; the
	// aligned and deliberately misaligned views planned below are
	// used only here and never returned to the caller.
	p1, err := backend.allocComplexScratch((n + 2) * howmany)
	if err != nil {
		plannerMu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	p2, err := backend.allocComplexScratch((n + 2) * howmany)
	if err != nil {
		backend.freeComplexScratch(p1)
		plannerMu.Unlock()

		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	for a := 0; a < 2; a++ {
		in, other := p1.Unaligned, p2.Unaligned
		if a == 1 {
			in, other = p1.Aligned, p2.Aligned
		}

		for ip := 0; ip < 2; ip++ {
			out := other
			if ip == 1 {
				out = in
			}

			for f := 0; f < 2; f++ {
				h.plan[a][ip][f] = backend.planComplex1D(engine.Complex1DSpec{
					N:       n,
					Howmany: howmany,
					Stride:  1,
					Dist:    n,
					Forward: f == 1,
					Tier:    tier,
					In:      in,
					Out:     out,
				})
			}
		}
	}

	return finishBuild(h, func() {
		backend.freeComplexScratch(p1)
		backend.freeComplexScratch(p2)
	})
}

// NewReal builds a handle for a 1-D real↔complex transform of length n.
func NewReal(n int, tier CostTier) (*Handle, error) {
	return NewManyReal(n, 1, tier)
}

// NewManyReal builds a handle for howmany 1-D real↔complex transforms
// of length n. The real side of each batch occupies (n/2+1)*2 float64
// slots, the complex side n/2+1 interleaved bins in the same slots, so
// in-place execution needs no separate layout.
func NewManyReal(n, howmany int, tier CostTier) (*Handle, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}

	if howmany < 1 {
		return nil, fmt.Errorf("%w: howmany=%d", ErrInvalidCount, howmany)
	}

	h := &Handle{ndim: 1, realTransform: true, n: n, howmany: howmany}

	realDist := (n/2 + 1) * 2
	cplxDist := n/2 + 1

	plannerMu.Lock()

	p1, err := backend.allocRealScratch(realDist*howmany + 2)
	if err != nil {
		plannerMu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	p2, err := backend.allocRealScratch(realDist*howmany + 2)
	if err != nil {
		backend.freeRealScratch(p1)
		plannerMu.Unlock()

		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	for a := 0; a < 2; a++ {
		in, other := p1.Unaligned, p2.Unaligned
		if a == 1 {
			in, other = p1.Aligned, p2.Aligned
		}

		for ip := 0; ip < 2; ip++ {
			out := other
			if ip == 1 {
				out = in
			}

			for f := 0; f < 2; f++ {
				h.plan[a][ip][f] = backend.planReal1D(engine.Real1DSpec{
					N:         n,
					Howmany:   howmany,
					RealDist:  realDist,
					CplxDist:  cplxDist,
					ToComplex: f == 1,
					Tier:      tier,
					In:        in,
					Out:       out,
				})
			}
		}
	}

	return finishBuild(h, func() {
		backend.freeRealScratch(p1)
		backend.freeRealScratch(p2)
	})
}

// NewReal2D builds a handle for a 2-D real↔complex transform of an
// nx×ny plane. Both sides use the padded row-major layout: each of the
// nx rows occupies (ny/2+1)*2 float64 slots.
func NewReal2D(nx, ny int, tier CostTier) (*Handle, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: nx=%d ny=%d", ErrInvalidSize, nx, ny)
	}

	h := &Handle{ndim: 2, realTransform: true, nx: nx, ny: ny, howmany: 1}

	planeFloats := nx * (ny/2 + 1) * 2

	plannerMu.Lock()

	p1, err := backend.allocRealScratch(planeFloats + 2)
	if err != nil {
		plannerMu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	p2, err := backend.allocRealScratch(planeFloats + 2)
	if err != nil {
		backend.freeRealScratch(p1)
		plannerMu.Unlock()

		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}

	for a := 0; a < 2; a++ {
		in, other := p1.Unaligned, p2.Unaligned
		if a == 1 {
			in, other = p1.Aligned, p2.Aligned
		}

		for ip := 0; ip < 2; ip++ {
			out := other
			if ip == 1 {
				out = in
			}

			for f := 0; f < 2; f++ {
				h.plan[a][ip][f] = backend.planReal2D(engine.Real2DSpec{
					NX:        nx,
					NY:        ny,
					ToComplex: f == 1,
					Tier:      tier,
					In:        in,
					Out:       out,
				})
			}
		}
	}

	return finishBuild(h, func() {
		backend.freeRealScratch(p1)
		backend.freeRealScratch(p2)
	})
}

// finishBuild scans the freshly built plan table, frees the scratch
// buffers and either seals the handle or tears everything down.
// Called with plannerMu held; returns with it released.
func finishBuild(h *Handle, freeScratch func()) (*Handle, error) {
	if slot, missing := h.firstMissingSlot(); missing {
		// Destroy acquires the planner lock itself and the lock is
		// not re-entrant, so release it around the teardown, then
		// take it again to free the scratch buffers.
		plannerMu.Unlock()
		h.Destroy()
		plannerMu.Lock()
		freeScratch()
		plannerMu.Unlock()

		return nil, fmt.Errorf("%w: %s slot", ErrPlanFailed, slot)
	}

	freeScratch()
	plannerMu.Unlock()

	return h, nil
}
