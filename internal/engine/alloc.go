package engine

import (
	"errors"
	"math"
	"sync/atomic"
	"unsafe"
)

// ErrAllocation is returned when a scratch allocation is refused, either
// because the requested size overflows index arithmetic or because the
// test-only allocation limit is exceeded.
var ErrAllocation = errors.New("engine: scratch allocation refused")

const alignSize = 16

// ComplexScratch is a planning-time buffer exposing two views of the
// same storage: Aligned starts on a 16-byte boundary, Unaligned starts
// 8 bytes past it. Both views hold n usable elements. Planning API:
// allocate and free under the planner lock, free exactly once.
type ComplexScratch struct {
	Aligned   []complex128
	Unaligned []complex128

	backing []byte
	size    int64
}

// RealScratch is the float64 counterpart of ComplexScratch.
type RealScratch struct {
	Aligned   []float64
	Unaligned []float64

	backing []byte
	size    int64
}

// outstanding counts bytes currently held by live scratch buffers.
var outstanding atomic.Int64

// allocLimit caps outstanding bytes when nonzero. Test hook.
var allocLimit atomic.Int64

// AllocComplexScratch allocates scratch for n complex128 elements.
func AllocComplexScratch(n int) (*ComplexScratch, error) {
	backing, err := allocBacking(n, 16)
	if err != nil {
		return nil, err
	}

	off := alignOffset(backing)

	return &ComplexScratch{
		Aligned:   unsafe.Slice((*complex128)(unsafe.Pointer(&backing[off])), n),
		Unaligned: unsafe.Slice((*complex128)(unsafe.Pointer(&backing[off+8])), n),
		backing:   backing,
		size:      int64(len(backing)),
	}, nil
}

// AllocRealScratch allocates scratch for n float64 elements.
func AllocRealScratch(n int) (*RealScratch, error) {
	backing, err := allocBacking(n, 8)
	if err != nil {
		return nil, err
	}

	off := alignOffset(backing)
	aligned := unsafe.Slice((*float64)(unsafe.Pointer(&backing[off])), n+1)

	return &RealScratch{
		Aligned:   aligned[:n],
		Unaligned: aligned[1 : n+1],
		backing:   backing,
		size:      int64(len(backing)),
	}, nil
}

// FreeComplexScratch returns a scratch buffer's bytes to the accounting
// pool. Freeing twice is a bug and panics.
func FreeComplexScratch(s *ComplexScratch) {
	if s.backing == nil {
		panic("engine: complex scratch freed twice")
	}

	outstanding.Add(-s.size)
	s.backing = nil
	s.Aligned = nil
	s.Unaligned = nil
}

// FreeRealScratch returns a scratch buffer's bytes to the accounting
// pool. Freeing twice is a bug and panics.
func FreeRealScratch(s *RealScratch) {
	if s.backing == nil {
		panic("engine: real scratch freed twice")
	}

	outstanding.Add(-s.size)
	s.backing = nil
	s.Aligned = nil
	s.Unaligned = nil
}

// OutstandingBytes returns the bytes currently held by live scratch
// buffers. Zero after every buffer has been freed.
func OutstandingBytes() int64 {
	return outstanding.Load()
}

// SetAllocLimit caps outstanding scratch bytes; zero removes the cap.
// Test hook; returns the previous limit.
func SetAllocLimit(limit int64) int64 {
	return allocLimit.Swap(limit)
}

func allocBacking(n, elemSize int) ([]byte, error) {
	// One extra element so the unaligned view has full capacity, plus
	// alignSize slack to find a 16-byte boundary.
	if n < 1 || n > (math.MaxInt-2*alignSize)/elemSize {
		return nil, ErrAllocation
	}

	size := n*elemSize + 2*alignSize
	if lim := allocLimit.Load(); lim != 0 && outstanding.Load()+int64(size) > lim {
		return nil, ErrAllocation
	}

	backing := make([]byte, size)
	outstanding.Add(int64(size))

	return backing, nil
}

func alignOffset(backing []byte) int {
	addr := uintptr(unsafe.Pointer(&backing[0]))
	return int((alignSize - addr%alignSize) % alignSize)
}
