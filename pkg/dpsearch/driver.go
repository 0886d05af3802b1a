package dpsearch

import "cmp"

// HistorySink receives every improving Solution a driver observes, in the
// order produced (spec.md §4.7, "streaming result channel"). Transitions
// may share its backing array with the solver's incumbent and with later
// Solutions; the solvers never modify a label slice once surfaced, but an
// implementation that modifies it should copy it first.
type HistorySink[C cmp.Ordered] interface {
	Record(Solution[C]) error
}

// Run drives solver to completion and returns the terminal Solution. Run
// owns all side effects the solver body itself must not perform (spec.md
// §5): history I/O happens here, between SearchNext calls.
//
// When keepAll is true, sink.Record is called for every Solution that
// SearchNext returns with a cost: each improvement, and the terminal
// Solution as well, which repeats the last improvement's cost (spec.md
// §4.5's "keep_all_solutions" default).
// When false, only the final Solution is recorded, matching a caller that
// wants just the end result without a per-improvement trail.
func Run[C cmp.Ordered](solver Solver[C], sink HistorySink[C], keepAll bool) (Solution[C], error) {
	var last Solution[C]
	for {
		sol, done := solver.SearchNext()
		last = sol
		if sink != nil && keepAll && sol.HasCost {
			if err := sink.Record(sol); err != nil {
				return sol, err
			}
		}
		if done {
			break
		}
	}
	if sink != nil && !keepAll && last.HasCost {
		if err := sink.Record(last); err != nil {
			return last, err
		}
	}
	return last, nil
}
