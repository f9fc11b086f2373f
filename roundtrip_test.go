package fftcache

import (
	"math"
	"math/rand"
	"testing"
)

func TestComplexTransformMatchesNaiveDFT(t *testing.T) {
	rnd := rand.New(rand.NewSource(20))

	for _, n := range []int{8, 12, 16, 40} {
		h, err := New(n, Quick)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", n, err)
		}

		in := make([]complex128, n)
		out := make([]complex128, n)
		for i := range in {
			in[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
		}

		h.Transform(Forward, in, out)
		assertComplexCloseTolf(t, out, naiveDFT(in), 1e-10, "forward n=%d", n)

		h.Destroy()
	}
}

func TestComplexRoundTripScalesByN(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))

	for _, n := range []int{16, 25} {
		h, err := New(n, Quick)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", n, err)
		}

		in := make([]complex128, n)
		for i := range in {
			in[i] = complex(rnd.Float64(), rnd.Float64())
		}

		freq := make([]complex128, n)
		back := make([]complex128, n)
		h.Transform(Forward, in, freq)
		h.Transform(Backward, freq, back)

		want := make([]complex128, n)
		for i := range want {
			want[i] = in[i] * complex(float64(n), 0)
		}

		assertComplexCloseTolf(t, back, want, 1e-10, "round trip n=%d", n)
		h.Destroy()
	}
}

func TestComplexBatchedInPlace(t *testing.T) {
	const (
		n       = 8
		howmany = 3
	)

	rnd := rand.New(rand.NewSource(22))

	h, err := NewMany(n, howmany, Quick)
	if err != nil {
		t.Fatalf("NewMany failed: %v", err)
	}

	defer h.Destroy()

	data := make([]complex128, n*howmany)
	for i := range data {
		data[i] = complex(rnd.Float64(), rnd.Float64())
	}

	want := make([]complex128, 0, n*howmany)
	for b := 0; b < howmany; b++ {
		want = append(want, naiveDFT(data[b*n:(b+1)*n])...)
	}

	h.Transform(Forward, data, data)
	assertComplexCloseTolf(t, data, want, 1e-10, "batched in-place forward")
}

// The canonical construction scenario: an 8-point real transform of an
// impulse, forward then backward, reproduces the input scaled by 8.
func TestRealImpulseRoundTrip(t *testing.T) {
	const n = 8

	h, err := NewReal(n, Quick)
	if err != nil {
		t.Fatalf("NewReal(%d) failed: %v", n, err)
	}

	defer h.Destroy()

	span := (n/2 + 1) * 2

	in := make([]float64, span)
	freq := make([]float64, span)
	back := make([]float64, span)
	in[0] = 1

	h.TransformReal(RealToComplex, in, freq)

	// The spectrum of an impulse is flat: every bin is 1+0i.
	for k := 0; k <= n/2; k++ {
		if math.Abs(freq[2*k]-1) > 1e-10 || math.Abs(freq[2*k+1]) > 1e-10 {
			t.Fatalf("bin %d = (%v,%v), want (1,0)", k, freq[2*k], freq[2*k+1])
		}
	}

	h.TransformReal(ComplexToReal, freq, back)

	want := []float64{8, 0, 0, 0, 0, 0, 0, 0}
	assertFloatsCloseTolf(t, back[:n], want, 1e-10, "unscaled real round trip")
}

func TestRealRoundTripOddAndBatched(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))

	cases := []struct{ n, howmany int }{
		{9, 1},
		{16, 2},
		{12, 3},
	}

	for _, tc := range cases {
		h, err := NewManyReal(tc.n, tc.howmany, Quick)
		if err != nil {
			t.Fatalf("NewManyReal(%d,%d) failed: %v", tc.n, tc.howmany, err)
		}

		dist := (tc.n/2 + 1) * 2
		span := dist * tc.howmany

		in := make([]float64, span)
		for b := 0; b < tc.howmany; b++ {
			for j := 0; j < tc.n; j++ {
				in[b*dist+j] = rnd.Float64()*2 - 1
			}
		}

		work := append([]float64(nil), in...)

		// In-place forward then backward through the same buffer.
		h.TransformReal(RealToComplex, work, work)
		h.TransformReal(ComplexToReal, work, work)

		for b := 0; b < tc.howmany; b++ {
			got := work[b*dist : b*dist+tc.n]
			want := make([]float64, tc.n)
			for j := range want {
				want[j] = in[b*dist+j] * float64(tc.n)
			}

			assertFloatsCloseTolf(t, got, want, 1e-10, "n=%d batch %d", tc.n, b)
		}

		h.Destroy()
	}
}

func TestReal2DRoundTripScalesByPlane(t *testing.T) {
	rnd := rand.New(rand.NewSource(24))

	for _, dims := range [][2]int{{4, 6}, {5, 5}} {
		nx, ny := dims[0], dims[1]

		h, err := NewReal2D(nx, ny, Quick)
		if err != nil {
			t.Fatalf("NewReal2D(%d,%d) failed: %v", nx, ny, err)
		}

		rowFloats := (ny/2 + 1) * 2
		span := nx * rowFloats

		in := make([]float64, span)
		for r := 0; r < nx; r++ {
			for c := 0; c < ny; c++ {
				in[r*rowFloats+c] = rnd.Float64()*2 - 1
			}
		}

		freq := make([]float64, span)
		back := make([]float64, span)
		h.TransformReal2D(RealToComplex, in, freq)
		h.TransformReal2D(ComplexToReal, freq, back)

		scale := float64(nx * ny)
		for r := 0; r < nx; r++ {
			got := back[r*rowFloats : r*rowFloats+ny]
			want := make([]float64, ny)
			for c := range want {
				want[c] = in[r*rowFloats+c] * scale
			}

			assertFloatsCloseTolf(t, got, want, 1e-10, "%dx%d row %d", nx, ny, r)
		}

		h.Destroy()
	}
}

// Aligned and unaligned buffers route to different cached plans; the
// numbers must come out identical either way.
func TestAlignmentClassesAgree(t *testing.T) {
	const n = 32

	rnd := rand.New(rand.NewSource(25))

	h, err := New(n, Quick)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}

	defer h.Destroy()

	alignedIn, unalignedIn := complexBuffers(t, n)
	alignedOut, unalignedOut := complexBuffers(t, n)

	for i := 0; i < n; i++ {
		v := complex(rnd.Float64(), rnd.Float64())
		alignedIn[i] = v
		unalignedIn[i] = v
	}

	h.Transform(Forward, alignedIn, alignedOut)
	h.Transform(Forward, unalignedIn, unalignedOut)

	assertComplexCloseTolf(t, unalignedOut, alignedOut, 1e-12, "alignment classes disagree")
}

func TestThoroughTierProducesSameNumbers(t *testing.T) {
	const n = 24

	rnd := rand.New(rand.NewSource(26))

	defer Cleanup() // drop the wisdom this test measures

	quick, err := New(n, Quick)
	if err != nil {
		t.Fatalf("New quick failed: %v", err)
	}

	defer quick.Destroy()

	thorough, err := New(n, Thorough)
	if err != nil {
		t.Fatalf("New thorough failed: %v", err)
	}

	defer thorough.Destroy()

	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(rnd.Float64(), rnd.Float64())
	}

	outQ := make([]complex128, n)
	outT := make([]complex128, n)
	quick.Transform(Forward, in, outQ)
	thorough.Transform(Forward, in, outT)

	assertComplexCloseTolf(t, outT, outQ, 1e-12, "tiers disagree")
}
