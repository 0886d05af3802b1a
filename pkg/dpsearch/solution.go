package dpsearch

import (
	"cmp"
	"time"
)

// Solution is the record surfaced by SearchNext (spec.md §3, "Solution
// record"): the current incumbent cost and bound, the transition label
// sequence from the target to that incumbent, elapsed wall-clock time, and
// search counters.
type Solution[C cmp.Ordered] struct {
	// Cost is the incumbent's total cost. Absent (HasCost=false) when no base
	// case has been found yet.
	Cost    C
	HasCost bool

	// BestBound is the tightest proven bound on the optimum seen so far.
	// May be present even when Cost is absent.
	BestBound    C
	HasBestBound bool

	// Transitions is the label sequence from the target to the
	// incumbent, target-to-incumbent order.
	Transitions []Label

	Time time.Duration

	Expanded  int64
	Generated int64

	IsOptimal    bool
	IsInfeasible bool
	Terminated   bool // true once the search has stopped: optimal, infeasible, or budget expired
}

// counters tallies the "expanded" and "generated" figures surfaced in
// every Solution, mirroring gokanlogic's SolverMonitor bookkeeping but
// scoped to exactly what spec.md §3 requires.
type counters struct {
	expanded  int64
	generated int64
}

func (c *counters) recordExpansion()  { c.expanded++ }
func (c *counters) recordGeneration() { c.generated++ }
