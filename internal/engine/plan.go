package engine

import "unsafe"

// Kind discriminates the transform families a Plan can hold.
type Kind int

const (
	KindComplex1D Kind = iota
	KindReal1D
	KindReal2D
)

// Plan is one reusable execution strategy for a specific transform
// shape, buffer placement and direction. Plans are built by the Plan*
// constructors (planning API, serialized by the caller) and executed
// lock-free via ExecuteComplex/ExecuteReal.
type Plan struct {
	kind    Kind
	forward bool // complex: transform sign; real kinds: true = real→complex
	aligned bool // planning buffers were 16-byte aligned
	inplace bool // planning buffers aliased

	n       int // 1-D length
	howmany int
	stride  int // complex 1-D, in complex elements
	dist    int // complex 1-D batch distance, in complex elements

	realDist int // real 1-D batch distance, in float64 elements
	cplxDist int // real 1-D batch distance, in complex elements

	nx, ny int // 2-D plane size

	fft    *kernel      // length n (1-D) or ny (2-D rows)
	col    *kernel      // length nx, 2-D columns
	buf    []complex128 // gather/compute buffer, length n or ny
	colBuf []complex128 // length nx
}

// Complex1DSpec describes a batched 1-D complex transform. In and Out
// are planning buffers: they size-check the shape and fix the plan's
// alignment and placement class; they are never retained.
type Complex1DSpec struct {
	N       int
	Howmany int
	Stride  int // distance between consecutive elements, in complex elements
	Dist    int // distance between consecutive transforms, in complex elements
	Forward bool
	Tier    Tier
	In, Out []complex128
}

// Real1DSpec describes a batched 1-D real↔complex transform. The
// complex half-spectrum side is carried as interleaved re/im pairs in
// the same []float64 layout the real side uses, so in-place execution
// needs no aliased typed views. RealDist is in float64 elements,
// CplxDist in complex elements.
type Real1DSpec struct {
	N         int
	Howmany   int
	RealDist  int
	CplxDist  int
	ToComplex bool
	Tier      Tier
	In, Out   []float64
}

// Real2DSpec describes a 2-D real↔complex transform of an nx×ny plane.
// Both sides use the padded row-major layout: each of the nx rows
// occupies (ny/2+1)*2 float64 slots, holding either ny real samples or
// ny/2+1 interleaved complex bins.
type Real2DSpec struct {
	NX, NY    int
	ToComplex bool
	Tier      Tier
	In, Out   []float64
}

// PlanComplex1D builds a plan for a batched 1-D complex transform.
// Returns nil if the spec is malformed or the planning buffers are too
// small for the requested shape.
func PlanComplex1D(s Complex1DSpec) *Plan {
	if s.N < 1 || s.Howmany < 1 || s.Stride < 1 || s.Dist < 1 {
		return nil
	}

	required := (s.Howmany-1)*s.Dist + (s.N-1)*s.Stride + 1
	if len(s.In) < required || len(s.Out) < required {
		return nil
	}

	aligned := alignedComplex(s.In, s.Out)

	p := &Plan{
		kind:    KindComplex1D,
		forward: s.Forward,
		aligned: aligned,
		inplace: &s.In[0] == &s.Out[0],
		n:       s.N,
		howmany: s.Howmany,
		stride:  s.Stride,
		dist:    s.Dist,
		fft:     newKernel(s.N, chooseStrategy(s.N, s.Tier), aligned && wideVectors),
		buf:     make([]complex128, s.N),
	}

	register(p)

	return p
}

// PlanReal1D builds a plan for a batched 1-D real↔complex transform.
// Returns nil if the spec is malformed or the planning buffers are too
// small for the requested shape.
func PlanReal1D(s Real1DSpec) *Plan {
	if s.N < 1 || s.Howmany < 1 {
		return nil
	}

	half := s.N/2 + 1
	if s.RealDist < s.N || s.CplxDist < half {
		return nil
	}

	realLen := (s.Howmany-1)*s.RealDist + s.N
	cplxLen := (s.Howmany-1)*s.CplxDist*2 + half*2

	realSide, cplxSide := s.In, s.Out
	if !s.ToComplex {
		realSide, cplxSide = s.Out, s.In
	}

	if len(realSide) < realLen || len(cplxSide) < cplxLen {
		return nil
	}

	aligned := alignedReal(s.In, s.Out)

	p := &Plan{
		kind:     KindReal1D,
		forward:  s.ToComplex,
		aligned:  aligned,
		inplace:  &s.In[0] == &s.Out[0],
		n:        s.N,
		howmany:  s.Howmany,
		realDist: s.RealDist,
		cplxDist: s.CplxDist,
		fft:      newKernel(s.N, chooseStrategy(s.N, s.Tier), aligned && wideVectors),
		buf:      make([]complex128, s.N),
	}

	register(p)

	return p
}

// PlanReal2D builds a plan for a 2-D real↔complex transform.
// Returns nil if the spec is malformed or the planning buffers are too
// small for the padded plane.
func PlanReal2D(s Real2DSpec) *Plan {
	if s.NX < 1 || s.NY < 1 {
		return nil
	}

	rowFloats := (s.NY/2 + 1) * 2
	if len(s.In) < s.NX*rowFloats || len(s.Out) < s.NX*rowFloats {
		return nil
	}

	aligned := alignedReal(s.In, s.Out)

	p := &Plan{
		kind:    KindReal2D,
		forward: s.ToComplex,
		aligned: aligned,
		inplace: &s.In[0] == &s.Out[0],
		nx:      s.NX,
		ny:      s.NY,
		fft:     newKernel(s.NY, chooseStrategy(s.NY, s.Tier), aligned && wideVectors),
		col:     newKernel(s.NX, chooseStrategy(s.NX, s.Tier), aligned && wideVectors),
		buf:     make([]complex128, s.NY),
		colBuf:  make([]complex128, s.NX),
	}

	register(p)

	return p
}

// Aligned reports the alignment class recorded at planning time.
func (p *Plan) Aligned() bool { return p.aligned }

// InPlace reports the placement class recorded at planning time.
func (p *Plan) InPlace() bool { return p.inplace }

// Strategy returns the DFT strategy bound to the plan's primary kernel.
func (p *Plan) Strategy() Strategy { return p.fft.strategy }

// livePlans tracks every plan built and not yet destroyed. Guarded by
// the caller's planning lock, like all other planner state.
var livePlans = make(map[*Plan]struct{})

func register(p *Plan) {
	livePlans[p] = struct{}{}
}

// DestroyPlan releases a plan's tables and removes it from the live
// registry. Accepts nil. Planning API: caller holds the planner lock.
func DestroyPlan(p *Plan) {
	if p == nil {
		return
	}

	delete(livePlans, p)
	p.fft = nil
	p.col = nil
	p.buf = nil
	p.colBuf = nil
}

// LivePlans returns the number of plans built and not yet destroyed.
func LivePlans() int {
	return len(livePlans)
}

const alignMask = 15 // engine's natural alignment is 16 bytes

func alignedComplex(in, out []complex128) bool {
	a := uintptr(unsafe.Pointer(&in[0])) | uintptr(unsafe.Pointer(&out[0]))
	return a&alignMask == 0
}

func alignedReal(in, out []float64) bool {
	a := uintptr(unsafe.Pointer(&in[0])) | uintptr(unsafe.Pointer(&out[0]))
	return a&alignMask == 0
}
