package fftcache

// Cleanup releases the engine's internal planner state: the wisdom
// cache of measured strategy choices. Intended to run once at process
// or library shutdown, after every handle has been destroyed; it is
// not an alternative to per-handle Destroy.
func Cleanup() {
	plannerMu.Lock()
	backend.cleanup()
	plannerMu.Unlock()
}
