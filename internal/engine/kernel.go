package engine

import "math"

// kernel is one reusable 1-D complex DFT of a fixed length, bound to a
// strategy at construction. forward and backward are unscaled; backward
// is forward under conjugation, so both strategies share one code path.
//
// dst and src must either alias exactly or not overlap at all. A kernel
// owns its scratch, so concurrent calls on the same kernel are not safe;
// concurrent calls on distinct kernels are.
type kernel struct {
	n        int
	strategy Strategy
	fused    bool // fold the first two butterfly stages into one pass

	// radix-2 tables
	twiddle []complex128 // exp(-2πik/n), k < n/2
	bitrev  []int

	// Bluestein tables
	m       int          // convolution length, power of two >= 2n-1
	chirp   []complex128 // exp(-iπ j²/n)
	chirpFT []complex128 // forward transform of the padded chirp filter
	sub     *kernel      // radix-2 kernel of length m
	work    []complex128 // length m
}

// newKernel builds a kernel for a length-n DFT. The strategy must be
// admissible for n. fused enables the folded first stages; it changes
// only the instruction mix, never the result.
func newKernel(n int, strategy Strategy, fused bool) *kernel {
	k := &kernel{n: n, strategy: strategy, fused: fused && n >= 4}

	switch strategy {
	case StrategyRadix2:
		k.twiddle = computeTwiddleFactors(n)
		k.bitrev = computeBitReversalIndices(n)
	case StrategyBluestein:
		k.m = nextPow2(2*n - 1)
		k.sub = newKernel(k.m, StrategyRadix2, fused)
		k.work = make([]complex128, k.m)
		k.chirp = computeChirp(n)
		k.chirpFT = computeChirpFilter(n, k.m, k.chirp, k.sub)
	default:
		return nil
	}

	return k
}

// forward computes the unscaled forward DFT of src into dst.
func (k *kernel) forward(dst, src []complex128) {
	k.load(dst, src)
	k.run(dst)
}

// backward computes the unscaled backward DFT of src into dst.
// Forward followed by backward multiplies the signal by n.
func (k *kernel) backward(dst, src []complex128) {
	k.load(dst, src)
	conjInPlace(dst[:k.n])
	k.run(dst)
	conjInPlace(dst[:k.n])
}

func (k *kernel) load(dst, src []complex128) {
	if &dst[0] != &src[0] {
		copy(dst[:k.n], src[:k.n])
	}
}

func (k *kernel) run(d []complex128) {
	switch k.strategy {
	case StrategyRadix2:
		k.runRadix2(d[:k.n])
	case StrategyBluestein:
		k.runBluestein(d[:k.n])
	}
}

func (k *kernel) runRadix2(d []complex128) {
	n := k.n
	for i, r := range k.bitrev {
		if i < r {
			d[i], d[r] = d[r], d[i]
		}
	}

	size := 2
	if k.fused {
		// Stages 2 and 4 carry trivial twiddles (1 and -i), so fold
		// them into a single pass over the data.
		for i := 0; i < n; i += 4 {
			a0, a1, a2, a3 := d[i], d[i+1], d[i+2], d[i+3]
			b0, b1 := a0+a1, a0-a1
			b2, b3 := a2+a3, a2-a3
			t3 := complex(imag(b3), -real(b3)) // -i * b3
			d[i], d[i+2] = b0+b2, b0-b2
			d[i+1], d[i+3] = b1+t3, b1-t3
		}

		size = 8
	}

	for ; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for i := 0; i < n; i += size {
			tw := 0
			for j := 0; j < half; j++ {
				u := d[i+j]
				v := d[i+j+half] * k.twiddle[tw]
				d[i+j] = u + v
				d[i+j+half] = u - v
				tw += step
			}
		}
	}
}

// runBluestein evaluates the length-n DFT as a circular convolution of
// length m: X_k = c_k · IDFT_m(DFT_m(x·c) ⊙ DFT_m(conj(c)))_k with
// c_j = exp(-iπj²/n).
func (k *kernel) runBluestein(d []complex128) {
	n, m := k.n, k.m
	work := k.work

	for j := 0; j < n; j++ {
		work[j] = d[j] * k.chirp[j]
	}

	for j := n; j < m; j++ {
		work[j] = 0
	}

	k.sub.run(work)

	for j := 0; j < m; j++ {
		work[j] *= k.chirpFT[j]
	}

	conjInPlace(work)
	k.sub.run(work)
	conjInPlace(work)

	scale := complex(1/float64(m), 0)
	for j := 0; j < n; j++ {
		d[j] = k.chirp[j] * work[j] * scale
	}
}

// computeTwiddleFactors returns exp(-2πik/n) for k = 0..n/2-1.
func computeTwiddleFactors(n int) []complex128 {
	half := n / 2
	twiddle := make([]complex128, half)

	for i := range twiddle {
		angle := -2 * math.Pi * float64(i) / float64(n)
		twiddle[i] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// computeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT.
func computeBitReversalIndices(n int) []int {
	bitrev := make([]int, n)
	bits := log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = reverseBits(i, bits)
	}

	return bitrev
}

// computeChirp returns c_j = exp(-iπ j²/n) for j = 0..n-1. The exponent
// is reduced modulo 2n before the float conversion so large j² values do
// not lose precision.
func computeChirp(n int) []complex128 {
	chirp := make([]complex128, n)
	mod := int64(2 * n)

	for j := 0; j < n; j++ {
		q := (int64(j) * int64(j)) % mod
		angle := -math.Pi * float64(q) / float64(n)
		chirp[j] = complex(math.Cos(angle), math.Sin(angle))
	}

	return chirp
}

// computeChirpFilter returns the forward length-m DFT of the circular
// chirp filter b, where b_j = conj(c_j) for j < n, b_{m-j} = conj(c_j)
// for 0 < j < n, and zero elsewhere.
func computeChirpFilter(n, m int, chirp []complex128, sub *kernel) []complex128 {
	b := make([]complex128, m)
	b[0] = conj(chirp[0])

	for j := 1; j < n; j++ {
		c := conj(chirp[j])
		b[j] = c
		b[m-j] = c
	}

	sub.run(b)

	return b
}

func conj(v complex128) complex128 {
	return complex(real(v), -imag(v))
}

func conjInPlace(d []complex128) {
	for i, v := range d {
		d[i] = complex(real(v), -imag(v))
	}
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// reverseBits reverses the lower 'bits' bits of x.
func reverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
