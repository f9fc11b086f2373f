package fftcache

import (
	"errors"
	"testing"

	"github.com/r2it-git/fftcache/internal/engine"
)

// mockPlanner is an instrumented planner double. It counts every call,
// verifies the lock discipline (planning calls arrive with plannerMu
// held, execute calls never do), and can inject allocation or plan
// failures at chosen call indices.
type mockPlanner struct {
	t *testing.T

	failAllocAt int          // fail the i-th alloc call; -1 disables
	failPlans   map[int]bool // fail the i-th plan call

	allocCalls  int
	freeCalls   int
	liveScratch int
	planCalls   int
	destroyed   int
	cleanups    int

	plans []*mockPlan
}

type mockPlan struct {
	m         *mockPlanner
	slot      int // creation index within the build: a*4 + ip*2 + f
	destroyed bool
	execC     int
	execR     int
}

var errInjectedAlloc = errors.New("injected allocation failure")

func newMockPlanner(t *testing.T) *mockPlanner {
	return &mockPlanner{t: t, failAllocAt: -1, failPlans: make(map[int]bool)}
}

func (m *mockPlanner) assertLocked() {
	m.t.Helper()

	if plannerMu.TryLock() {
		plannerMu.Unlock()
		m.t.Error("planning call reached the backend without the planner lock held")
	}
}

func (m *mockPlanner) assertUnlocked() {
	m.t.Helper()

	if !plannerMu.TryLock() {
		m.t.Error("execute call observed the planner lock held")
		return
	}

	plannerMu.Unlock()
}

func (m *mockPlanner) nextAlloc() bool {
	idx := m.allocCalls
	m.allocCalls++

	if idx == m.failAllocAt {
		return false
	}

	m.liveScratch++

	return true
}

func (m *mockPlanner) allocComplexScratch(n int) (*engine.ComplexScratch, error) {
	m.assertLocked()

	if !m.nextAlloc() {
		return nil, errInjectedAlloc
	}

	backing := make([]complex128, n+1)

	return &engine.ComplexScratch{Aligned: backing[:n], Unaligned: backing[1 : n+1]}, nil
}

func (m *mockPlanner) allocRealScratch(n int) (*engine.RealScratch, error) {
	m.assertLocked()

	if !m.nextAlloc() {
		return nil, errInjectedAlloc
	}

	backing := make([]float64, n+1)

	return &engine.RealScratch{Aligned: backing[:n], Unaligned: backing[1 : n+1]}, nil
}

func (m *mockPlanner) freeComplexScratch(*engine.ComplexScratch) {
	m.assertLocked()
	m.freeCalls++
	m.liveScratch--
}

func (m *mockPlanner) freeRealScratch(*engine.RealScratch) {
	m.assertLocked()
	m.freeCalls++
	m.liveScratch--
}

func (m *mockPlanner) nextPlan() enginePlan {
	m.assertLocked()

	idx := m.planCalls
	m.planCalls++

	if m.failPlans[idx] {
		return nil
	}

	p := &mockPlan{m: m, slot: idx}
	m.plans = append(m.plans, p)

	return p
}

func (m *mockPlanner) planComplex1D(engine.Complex1DSpec) enginePlan { return m.nextPlan() }
func (m *mockPlanner) planReal1D(engine.Real1DSpec) enginePlan      { return m.nextPlan() }
func (m *mockPlanner) planReal2D(engine.Real2DSpec) enginePlan      { return m.nextPlan() }

func (m *mockPlanner) destroyPlan(p enginePlan) {
	m.assertLocked()

	mp := p.(*mockPlan)
	if mp.destroyed {
		m.t.Error("plan destroyed twice")
	}

	mp.destroyed = true
	m.destroyed++
}

func (m *mockPlanner) cleanup() {
	m.assertLocked()
	m.cleanups++
}

func (p *mockPlan) ExecuteComplex(in, out []complex128) {
	p.m.assertUnlocked()

	if p.destroyed {
		p.m.t.Error("execute on a destroyed plan")
	}

	p.execC++
}

func (p *mockPlan) Strategy() engine.Strategy {
	return engine.StrategyAuto
}

func (p *mockPlan) ExecuteReal(in, out []float64) {
	p.m.assertUnlocked()

	if p.destroyed {
		p.m.t.Error("execute on a destroyed plan")
	}

	p.execR++
}
