package engine

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// wideVectors reports whether the host CPU has vector units wide enough
// for the fused butterfly stages to pay off. The fused path additionally
// requires the plan's data buffers to be naturally aligned; plans built
// on unaligned buffers always take the generic stage loop.
var wideVectors = detectWideVectors()

func detectWideVectors() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasSSE2 || cpu.X86.HasAVX2
	case "386":
		return cpu.X86.HasSSE2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// setWideVectors overrides feature detection. Test hook; returns the
// previous value so tests can restore it.
func setWideVectors(v bool) bool {
	old := wideVectors
	wideVectors = v

	return old
}
