package fftcache

import (
	"fmt"
	"os"

	"github.com/r2it-git/fftcache/internal/engine"
)

// ImportWisdom loads strategy choices from a file produced by
// ExportWisdom, so thorough-tier measurements from an earlier run are
// reused instead of repeated. Wisdom is planner state, so the call is
// serialized like any other planning call.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	plannerMu.Lock()
	defer plannerMu.Unlock()

	if err := engine.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves the current wisdom cache to a file that can be
// loaded later with ImportWisdom.
func ExportWisdom(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer f.Close()

	plannerMu.Lock()
	defer plannerMu.Unlock()

	if err := engine.DefaultWisdom.Export(f); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// WisdomLen returns the number of transform lengths with a recorded
// strategy choice.
func WisdomLen() int {
	plannerMu.Lock()
	defer plannerMu.Unlock()

	return engine.DefaultWisdom.Len()
}
