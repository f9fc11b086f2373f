package fftcache

import "github.com/r2it-git/fftcache/internal/engine"

// enginePlan is the executable product of one planning call. Execute
// methods take no lock and touch no shared state.
type enginePlan interface {
	ExecuteComplex(in, out []complex128)
	ExecuteReal(in, out []float64)
	Strategy() engine.Strategy
}

// planner is the slice of the engine's planning API the builders need.
// Every method must be called with plannerMu held. Tests swap in an
// instrumented double to verify teardown and lock discipline.
type planner interface {
	allocComplexScratch(n int) (*engine.ComplexScratch, error)
	allocRealScratch(n int) (*engine.RealScratch, error)
	freeComplexScratch(s *engine.ComplexScratch)
	freeRealScratch(s *engine.RealScratch)
	planComplex1D(s engine.Complex1DSpec) enginePlan
	planReal1D(s engine.Real1DSpec) enginePlan
	planReal2D(s engine.Real2DSpec) enginePlan
	destroyPlan(p enginePlan)
	cleanup()
}

// backend is the planner all builders go through. Overridden in tests.
var backend planner = livePlanner{}

// livePlanner binds the planner interface to the real engine.
type livePlanner struct{}

func (livePlanner) allocComplexScratch(n int) (*engine.ComplexScratch, error) {
	return engine.AllocComplexScratch(n)
}

func (livePlanner) allocRealScratch(n int) (*engine.RealScratch, error) {
	return engine.AllocRealScratch(n)
}

func (livePlanner) freeComplexScratch(s *engine.ComplexScratch) {
	engine.FreeComplexScratch(s)
}

func (livePlanner) freeRealScratch(s *engine.RealScratch) {
	engine.FreeRealScratch(s)
}

func (livePlanner) planComplex1D(s engine.Complex1DSpec) enginePlan {
	return wrapPlan(engine.PlanComplex1D(s))
}

func (livePlanner) planReal1D(s engine.Real1DSpec) enginePlan {
	return wrapPlan(engine.PlanReal1D(s))
}

func (livePlanner) planReal2D(s engine.Real2DSpec) enginePlan {
	return wrapPlan(engine.PlanReal2D(s))
}

func (livePlanner) destroyPlan(p enginePlan) {
	engine.DestroyPlan(p.(*engine.Plan))
}

func (livePlanner) cleanup() {
	engine.Cleanup()
}

// wrapPlan keeps a failed build as an untyped nil so slot scans see it.
func wrapPlan(p *engine.Plan) enginePlan {
	if p == nil {
		return nil
	}

	return p
}
