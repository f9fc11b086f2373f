package fftcache

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/r2it-git/fftcache/internal/engine"
)

// Shared test helpers used across multiple test files.

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(j) * float64(k) / float64(n)
			sum += x[j] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}

func assertComplexCloseTolf(t *testing.T, got, want []complex128, tol float64, format string, args ...any) {
	t.Helper()

	scale := 1.0
	for _, v := range want {
		if m := cmplx.Abs(v); m > scale {
			scale = m
		}
	}

	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > tol*scale {
			t.Fatalf(format+": bin %d got %v want %v", append(args, i, got[i], want[i])...)
		}
	}
}

func assertFloatsCloseTolf(t *testing.T, got, want []float64, tol float64, format string, args ...any) {
	t.Helper()

	scale := 1.0
	for _, v := range want {
		if m := math.Abs(v); m > scale {
			scale = m
		}
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > tol*scale {
			t.Fatalf(format+": sample %d got %v want %v", append(args, i, got[i], want[i])...)
		}
	}
}

// swapBackend installs a planner double for the duration of one test.
// Tests that call it must not run in parallel.
func swapBackend(t *testing.T, p planner) {
	t.Helper()

	old := backend
	backend = p

	t.Cleanup(func() { backend = old })
}

// complexBuffers returns a guaranteed 16-byte aligned and a guaranteed
// misaligned view of n complex elements each, freed when the test ends.
func complexBuffers(t *testing.T, n int) (aligned, unaligned []complex128) {
	t.Helper()

	s, err := engine.AllocComplexScratch(n)
	if err != nil {
		t.Fatalf("scratch allocation failed: %v", err)
	}

	t.Cleanup(func() { engine.FreeComplexScratch(s) })

	return s.Aligned, s.Unaligned
}

// realBuffers is the float64 counterpart of complexBuffers.
func realBuffers(t *testing.T, n int) (aligned, unaligned []float64) {
	t.Helper()

	s, err := engine.AllocRealScratch(n)
	if err != nil {
		t.Fatalf("scratch allocation failed: %v", err)
	}

	t.Cleanup(func() { engine.FreeRealScratch(s) })

	return s.Aligned, s.Unaligned
}
