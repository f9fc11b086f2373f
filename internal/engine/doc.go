// Package engine is the Fourier-transform backend behind the fftcache
// plan cache. It plans and executes 1-D complex, 1-D real↔complex and
// 2-D real↔complex discrete Fourier transforms in pure Go.
//
// Both directions are unscaled: a forward transform followed by a
// backward transform multiplies the signal by N (nx*ny in two
// dimensions). Callers that want a normalized round trip divide by N
// themselves.
//
// None of the planning calls (Plan*, DestroyPlan, Alloc*Scratch,
// Free*Scratch, Cleanup, wisdom access) are safe for concurrent use:
// they share the wisdom cache, the live-plan registry and the scratch
// accounting without internal locking. Callers serialize them behind a
// single lock. Execute calls on distinct plans with distinct buffers
// are safe to run concurrently and never touch shared state.
package engine
