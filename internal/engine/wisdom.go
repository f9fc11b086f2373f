package engine

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Wisdom caches the strategy chosen for each transform length, so a
// thorough-tier measurement done once is reused by every later plan of
// the same length. Planner state: access only under the planner lock.
type Wisdom struct {
	entries map[int]Strategy
}

// DefaultWisdom is the process-wide wisdom cache consulted by the
// planner. Cleared by Cleanup.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[int]Strategy)}
}

// Lookup returns the recorded strategy for length n, if any.
func (w *Wisdom) Lookup(n int) (Strategy, bool) {
	s, ok := w.entries[n]
	return s, ok
}

// Record stores the strategy for length n, replacing any earlier entry.
func (w *Wisdom) Record(n int, s Strategy) {
	w.entries[n] = s
}

// Len returns the number of recorded lengths.
func (w *Wisdom) Len() int {
	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.entries = make(map[int]Strategy)
}

type wisdomEntry struct {
	N        int    `yaml:"n"`
	Strategy string `yaml:"strategy"`
}

type wisdomFile struct {
	Entries []wisdomEntry `yaml:"entries"`
}

// Export writes the cache in the YAML format Import reads, sorted by
// length so exports are stable.
func (w *Wisdom) Export(out io.Writer) error {
	file := wisdomFile{Entries: make([]wisdomEntry, 0, len(w.entries))}

	for n, s := range w.entries {
		file.Entries = append(file.Entries, wisdomEntry{N: n, Strategy: s.String()})
	}

	sort.Slice(file.Entries, func(i, j int) bool { return file.Entries[i].N < file.Entries[j].N })

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshal wisdom: %w", err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write wisdom: %w", err)
	}

	return nil
}

// Import merges entries from a YAML export into the cache. Entries with
// unknown strategy names or non-positive lengths are skipped; strategies
// that cannot compute the recorded length are skipped too, so a corrupt
// file can never make the planner build an invalid kernel.
func (w *Wisdom) Import(in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read wisdom: %w", err)
	}

	var file wisdomFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal wisdom: %w", err)
	}

	for _, e := range file.Entries {
		s, ok := strategyFromName(e.Strategy)
		if !ok || !s.admissible(e.N) {
			continue
		}

		w.entries[e.N] = s
	}

	return nil
}

// Cleanup drops the engine's internal planner state: the wisdom cache.
// Intended to run once at shutdown, after all plans have been
// destroyed; it does not replace per-plan destruction.
func Cleanup() {
	DefaultWisdom.Clear()
}
