package dpsearch

import "time"

// SearchParameters configures either solver (spec.md §4.6, §6). The zero
// value is a sensible default: no wall-clock budget.
type SearchParameters struct {
	// TimeLimit bounds wall-clock search time. Zero or negative means
	// unbounded.
	TimeLimit time.Duration

	// Quiet suppresses the solver's intermediate yields on incumbent
	// improvement; only the final (terminal) Solution is surfaced through
	// SearchNext. Since SearchNext is pull-based, this only changes how
	// many calls are needed to drain the solver, not its result. Mirrors
	// the Rust original's SearchParameters flag of the same name.
	Quiet bool
}

// FEvaluator names a default cost combinator (spec.md §4.5). Neither
// solver reads it: Problem.Combine is always authoritative, and
// FEvaluator only documents which helper (Plus or Max) a reference
// implementation is expected to pass.
type FEvaluator int

const (
	FEvaluatorPlus FEvaluator = iota
	FEvaluatorMax
)

// CABSParameters configures the CABS solver (spec.md §4.5).
type CABSParameters struct {
	// InitialBeamWidth is W_0. Defaults to 1 when <= 0.
	InitialBeamWidth int

	// BeamWidthGrowth is the multiplicative factor r applied to the beam
	// width after every non-exhaustive iteration. Defaults to 2 when
	// <= 1.
	BeamWidthGrowth float64

	// MaxBeamWidth caps the beam width; once reached, CABS continues at
	// that width and only declares optimality on a non-suspending sweep.
	// Zero means uncapped.
	MaxBeamWidth int

	// KeepAllSolutions controls whether Run's history sink retains every
	// improvement or only the final Solution (spec.md §4.5). The solver
	// itself always surfaces every improvement through SearchNext
	// (unless SearchParameters.Quiet); this flag is read by the caller
	// driving Run, not by the solver.
	KeepAllSolutions bool

	// FEvaluator documents the default combinator a reference
	// implementation passes; see FEvaluator's doc comment.
	FEvaluator FEvaluator
}

// DefaultCABSParameters returns spec.md §4.5's defaults: W_0=1, r=2,
// uncapped width, every solution kept, additive combinator.
func DefaultCABSParameters() CABSParameters {
	return CABSParameters{
		InitialBeamWidth: 1,
		BeamWidthGrowth:  2,
		KeepAllSolutions: true,
		FEvaluator:       FEvaluatorPlus,
	}
}

func (p CABSParameters) normalized() CABSParameters {
	if p.InitialBeamWidth <= 0 {
		p.InitialBeamWidth = 1
	}
	if p.BeamWidthGrowth <= 1 {
		p.BeamWidthGrowth = 2
	}
	return p
}
