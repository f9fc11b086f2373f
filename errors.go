package fftcache

import "errors"

// Sentinel errors returned by handle construction.
var (
	// ErrInvalidSize is returned when a transform size is not positive.
	ErrInvalidSize = errors.New("fftcache: invalid transform size")

	// ErrInvalidCount is returned when a batch count is not positive.
	ErrInvalidCount = errors.New("fftcache: invalid batch count")

	// ErrOutOfMemory is returned when the engine refuses a scratch
	// allocation during planning. Everything allocated up to that
	// point has been released; the caller may retry with a smaller
	// transform.
	ErrOutOfMemory = errors.New("fftcache: scratch allocation failed")

	// ErrPlanFailed is returned when the engine cannot build one of
	// the eight required plans. It indicates a configuration the
	// engine fundamentally rejects, so unlike the other errors it is
	// not worth retrying. All partial plans and scratch buffers have
	// been released.
	ErrPlanFailed = errors.New("fftcache: engine could not build plan")
)
