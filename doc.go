// Package fftcache precomputes, for a given transform size and kind,
// every execution variant the Fourier engine supports, and selects the
// right one at call time with zero replanning cost.
//
// A Handle caches eight plans, one per combination of buffer alignment
// (16-byte aligned or not), placement (in-place or out-of-place) and
// direction. Transform and TransformReal classify the caller's buffers
// by address and route to the matching plan without taking any lock.
//
// None of the engine's planning calls are safe to run concurrently, so
// handle construction and destruction are serialized behind a single
// process-wide lock. That is acceptable because handles are built once
// during setup, not per time step. Execution is lock-free: concurrent
// transforms on distinct handles with distinct buffers are safe.
//
// Transforms are unscaled in both directions: forward followed by
// backward multiplies the signal by N (nx*ny in two dimensions).
package fftcache
