package fftcache

import "unsafe"

const alignMask = 15 // the engine guarantees nothing beyond 16-byte alignment

// Transform performs the cached 1-D complex transform. dir must be
// Forward or Backward; in and out must each hold Batch()*Len()
// elements and either alias exactly or not overlap.
//
// The call takes no lock and has no side effects beyond writing out
// (which aliases in for in-place requests). Calling it on a real or
// 2-D handle, or with a real↔complex direction, is a programming error
// and panics.
func (h *Handle) Transform(dir Direction, in, out []complex128) {
	if h.realTransform || h.ndim != 1 || (dir != Forward && dir != Backward) {
		panic("fftcache: transform mismatch - bad handle kind or direction")
	}

	inAddr := uintptr(unsafe.Pointer(&in[0]))
	outAddr := uintptr(unsafe.Pointer(&out[0]))

	a := boolIndex((inAddr|outAddr)&alignMask == 0)
	ip := boolIndex(inAddr == outAddr)
	f := boolIndex(dir == Forward)

	h.plan[a][ip][f].ExecuteComplex(in, out)
}

// TransformReal performs the cached 1-D real↔complex transform. dir
// must be RealToComplex or ComplexToReal. Both buffers are []float64
// holding Batch()*(Len()/2+1)*2 elements: the real side carries Len()
// samples per batch, the complex side Len()/2+1 interleaved re/im
// bins. Panics on a complex or 2-D handle or a complex direction.
func (h *Handle) TransformReal(dir Direction, in, out []float64) {
	if !h.realTransform || h.ndim != 1 || (dir != RealToComplex && dir != ComplexToReal) {
		panic("fftcache: transform mismatch - bad handle kind or direction")
	}

	h.dispatchReal(dir, in, out)
}

// TransformReal2D performs the cached 2-D real↔complex transform on a
// padded nx×ny plane (see NewReal2D for the layout). dir must be
// RealToComplex or ComplexToReal. Panics on a complex or 1-D handle or
// a complex direction.
func (h *Handle) TransformReal2D(dir Direction, in, out []float64) {
	if !h.realTransform || h.ndim != 2 || (dir != RealToComplex && dir != ComplexToReal) {
		panic("fftcache: transform mismatch - bad handle kind or direction")
	}

	h.dispatchReal(dir, in, out)
}

func (h *Handle) dispatchReal(dir Direction, in, out []float64) {
	inAddr := uintptr(unsafe.Pointer(&in[0]))
	outAddr := uintptr(unsafe.Pointer(&out[0]))

	a := boolIndex((inAddr|outAddr)&alignMask == 0)
	ip := boolIndex(inAddr == outAddr)
	f := boolIndex(dir == RealToComplex)

	h.plan[a][ip][f].ExecuteReal(in, out)
}

func boolIndex(b bool) int {
	if b {
		return 1
	}

	return 0
}
