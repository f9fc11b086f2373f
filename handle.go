package fftcache

// Handle caches every execution variant of one transform shape.
//
// Three alternatives (unaligned/aligned, out-of-place/in-place,
// backward/forward) give 8 plans, tracked with 3 array indices:
//
//	first index:  0=unaligned, 1=aligned
//	second index: 0=out-of-place, 1=in-place
//	third index:  0=backward (complex-to-real), 1=forward (real-to-complex)
//
// A Handle returned by a builder always has all 8 slots populated;
// partially built handles are torn down before the builder returns.
// A Handle is immutable after construction except for Destroy, which
// must be called exactly once. Using a Handle after Destroy, or
// destroying it twice, is undefined: the execute path stays lock-free
// and minimal by design, so no double-free protection is provided.
type Handle struct {
	plan [2][2][2]enginePlan

	// realTransform and ndim catch caller mistakes at dispatch time.
	realTransform bool
	ndim          int

	n       int
	howmany int
	nx, ny  int
}

// Len returns the 1-D transform length, or 0 for a 2-D handle.
func (h *Handle) Len() int { return h.n }

// Batch returns the number of transforms per execute call.
func (h *Handle) Batch() int { return h.howmany }

// Dims returns the 2-D plane size, or zeros for a 1-D handle.
func (h *Handle) Dims() (nx, ny int) { return h.nx, h.ny }

// Real reports whether the handle performs real↔complex transforms.
func (h *Handle) Real() bool { return h.realTransform }

// Strategy returns the name of the DFT strategy the engine selected for
// this handle's transforms. The strategy depends only on the transform
// length, so all cached plans of a handle share it. Valid until Destroy.
func (h *Handle) Strategy() string {
	return h.plan[1][0][1].Strategy().String()
}

// Destroy releases the engine resources behind every populated plan
// slot. It is a no-op on a nil handle. Plan destruction is a planning
// call, so the whole sweep runs under the planner lock.
func (h *Handle) Destroy() {
	if h == nil {
		return
	}

	plannerMu.Lock()
	for a := range h.plan {
		for ip := range h.plan[a] {
			for f := range h.plan[a][ip] {
				if p := h.plan[a][ip][f]; p != nil {
					backend.destroyPlan(p)
					h.plan[a][ip][f] = nil
				}
			}
		}
	}
	plannerMu.Unlock()
}

// firstMissingSlot names the first empty plan slot, if any.
func (h *Handle) firstMissingSlot() (string, bool) {
	alignName := [2]string{"unaligned", "aligned"}
	placeName := [2]string{"out-of-place", "in-place"}
	dirName := [2]string{"backward", "forward"}

	for a := range h.plan {
		for ip := range h.plan[a] {
			for f := range h.plan[a][ip] {
				if h.plan[a][ip][f] == nil {
					return alignName[a] + "/" + placeName[ip] + "/" + dirName[f], true
				}
			}
		}
	}

	return "", false
}
