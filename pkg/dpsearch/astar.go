package dpsearch

import "cmp"

// AStar implements spec.md §4.4: best-first search with an admissible dual
// bound, exhaustive and memory-unbounded. AStar is optimal once open is
// empty or the head-of-open's f is no better than the incumbent.
type AStar[S any, C cmp.Ordered, K comparable] struct {
	*runner[C]
}

// NewAStar constructs an A* solver over problem, using dom for dominance
// pruning (pass NoDominance[S]() for none) and params for the wall-clock
// budget.
func NewAStar[S any, C cmp.Ordered, K comparable](problem Problem[S, C], dom Dominance[S, K], params SearchParameters) *AStar[S, C, K] {
	return &AStar[S, C, K]{runner: newRunner(func(yield func(Solution[C], bool)) {
		runAStar(problem, dom, params, yield)
	})}
}

func runAStar[S any, C cmp.Ordered, K comparable](problem Problem[S, C], dom Dominance[S, K], params SearchParameters, yield func(Solution[C], bool)) {
	mode := problem.Mode()
	var zero C

	a := newArena[S, C]()
	reg := newRegistry(mode, dom, a)
	open := newOpenSet(mode, a)
	tmr := newTimer(params.TimeLimit)
	inc := newIncumbentTracker[C](mode)
	bound := newBoundTracker[C](mode)
	var stats counters

	build := func(terminated, optimal, infeasible bool) Solution[C] {
		sol := Solution[C]{
			Time:         tmr.elapsed(),
			Expanded:     stats.expanded,
			Generated:    stats.generated,
			IsOptimal:    optimal,
			IsInfeasible: infeasible,
			Terminated:   terminated,
		}
		if inc.has {
			sol.Cost = inc.cost
			sol.HasCost = true
			sol.Transitions = inc.labels
		}
		if bound.has {
			sol.BestBound = bound.value
			sol.HasBestBound = true
		}
		return sol
	}

	// discoverTerminal evaluates state as a possible incumbent without
	// allocating an arena node for it (it has no successors to expand).
	discoverTerminal := func(g C, base C, labels []Label) bool {
		total := problem.Combine(g, base)
		return inc.offer(total, labels)
	}

	// discover expands one edge: a base case only updates the incumbent;
	// any other state has its dual bound checked, is admitted into the
	// registry, and is pushed onto open if it survives. Returns whether
	// the incumbent improved.
	discover := func(parent nodeHandle, g C, label Label, state S) bool {
		stats.recordGeneration()
		improved := false
		if base, ok := problem.BaseCost(state); ok {
			var labels []Label
			if parent == noParent {
				labels = nil
			} else {
				labels = append(a.path(parent), label)
			}
			return discoverTerminal(g, base, labels)
		}
		h, ok := problem.DualBound(state)
		if !ok {
			return improved // infeasible from here; nothing further to explore
		}
		f := problem.Combine(g, h)
		if inc.has && prunedByIncumbent(mode, f, inc.cost) {
			return improved
		}
		handle := a.alloc(&node[S, C]{state: state, g: g, h: h, f: f, parent: parent, label: label})
		if !reg.admit(handle) {
			return improved
		}
		open.push(handle)
		return improved
	}

	if discover(noParent, zero, 0, problem.Target()) && !params.Quiet {
		yield(build(false, false, false), false)
	}

	for {
		if tmr.expired() {
			yield(build(true, false, false), true)
			return
		}

		h, ok := open.peek()
		if !ok {
			if inc.has {
				yield(build(true, true, false), true)
			} else {
				yield(build(true, false, true), true)
			}
			return
		}
		n := a.at(h)
		if n.dead {
			open.popFront()
			continue
		}
		if inc.has && !betterF(mode, n.f, inc.cost) {
			yield(build(true, true, false), true)
			return
		}

		open.popFront()
		n.closed = true
		stats.recordExpansion()
		bound.offer(n.f)

		improved := false
		for succ := range problem.Successors(n.state) {
			g2 := problem.Combine(n.g, succ.Weight)
			if discover(h, g2, succ.Label, succ.State) {
				improved = true
			}
		}

		if nh, ok := open.peek(); ok {
			f := a.at(nh).f
			if inc.has && betterF(mode, inc.cost, f) {
				f = inc.cost
			}
			bound.offer(f)
		} else if inc.has {
			bound.offer(inc.cost)
		}

		if improved && !params.Quiet {
			yield(build(false, false, false), false)
		}
	}
}
