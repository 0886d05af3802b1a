package dpsearch

import "cmp"

// CABS implements spec.md §4.5: Complete Anytime Beam Search. Each
// iteration restarts from the target and performs a layered breadth-first
// sweep, keeping only the best W states per layer (the "beam"); states cut
// from the beam are flagged suspended and stay in the registry for the
// rest of the iteration, but are not explored further. If an iteration
// suspends nothing, the sweep was exhaustive at that width and the
// incumbent is optimal. If the incumbent is not yet optimal, W grows by
// CABSParameters.BeamWidthGrowth and the next iteration restarts.
//
// Suspended nodes are not carried forward as frontier work into the next
// iteration: each iteration re-traverses from the target. The registry is
// not retained either: every iteration builds a fresh arena and registry,
// so dominance information from an earlier iteration is not reused and a
// re-traversal surveys again the states an earlier iteration already
// pruned. Only the incumbent and bound trackers carry over. See DESIGN.md.
type CABS[S any, C cmp.Ordered, K comparable] struct {
	*runner[C]
}

// NewCABS constructs a CABS solver over problem, using dom for dominance
// pruning (pass NoDominance[S]() for none), search and beam parameters.
func NewCABS[S any, C cmp.Ordered, K comparable](problem Problem[S, C], dom Dominance[S, K], search SearchParameters, beam CABSParameters) *CABS[S, C, K] {
	beam = beam.normalized()
	return &CABS[S, C, K]{runner: newRunner(func(yield func(Solution[C], bool)) {
		runCABS(problem, dom, search, beam, yield)
	})}
}

func runCABS[S any, C cmp.Ordered, K comparable](problem Problem[S, C], dom Dominance[S, K], search SearchParameters, beam CABSParameters, yield func(Solution[C], bool)) {
	mode := problem.Mode()
	var zero C

	tmr := newTimer(search.TimeLimit)
	inc := newIncumbentTracker[C](mode)
	bound := newBoundTracker[C](mode)
	var stats counters
	everFeasible := false

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

	width := beam.InitialBeamWidth

	for {
		if tmr.expired() {
			yield(build(true, false, false), true)
			return
		}

		// Fresh arena/registry per iteration: a restarted sweep does not
		// reuse the previous iteration's nodes. Only the cumulative
		// incumbent and bound trackers survive across iterations.
		a := newArena[S, C]()
		reg := newRegistry(mode, dom, a)

		var frontier []nodeHandle
		iterationImproved := false

		discover := func(parent nodeHandle, g C, label Label, state S) {
			stats.recordGeneration()
			if base, ok := problem.BaseCost(state); ok {
				var labels []Label
				if parent != noParent {
					labels = append(a.path(parent), label)
				}
				total := problem.Combine(g, base)
				if inc.offer(total, labels) {
					iterationImproved = true
					everFeasible = true
				}
				// A base case is only an incumbent candidate; it never
				// joins the beam.
				return
			}
			h, ok := problem.DualBound(state)
			if !ok {
				return
			}
			f := problem.Combine(g, h)
			if inc.has && prunedByIncumbent(mode, f, inc.cost) {
				return
			}
			handle := a.alloc(&node[S, C]{state: state, g: g, h: h, f: f, parent: parent, label: label})
			if !reg.admit(handle) {
				return
			}
			frontier = append(frontier, handle)
		}

		discover(noParent, zero, 0, problem.Target())
		layer := frontier
		frontier = nil

		suspendedThisIteration := false
		var iterBound C
		hasIterBound := false

		for len(layer) > 0 {
			if tmr.expired() {
				yield(build(true, false, false), true)
				return
			}

			// Order the layer best-first so the surviving beam is the W
			// best candidates, then suspend the remainder.
			orderLayer(mode, a, layer)
			if len(layer) > width {
				suspended := layer[width:]
				for _, h := range suspended {
					a.at(h).suspended = true
				}
				// The iteration's bound comes from the suspended nodes,
				// not the kept beam: the kept beam's best f is always at
				// least as good as any suspended node's, so using it
				// would report a looser bound. The best suspended f is
				// kept across all layers of the iteration.
				if nh := bestF(mode, a, suspended); nh != noParent {
					if f := a.at(nh).f; !hasIterBound || betterF(mode, f, iterBound) {
						iterBound, hasIterBound = f, true
					}
				}
				suspendedThisIteration = true
				layer = layer[:width]
			}

			frontier = nil
			for _, h := range layer {
				n := a.at(h)
				if n.dead {
					continue
				}
				n.closed = true
				stats.recordExpansion()
				for succ := range problem.Successors(n.state) {
					g2 := problem.Combine(n.g, succ.Weight)
					discover(h, g2, succ.Label, succ.State)
				}
			}
			layer = frontier
		}

		// A solution better than the incumbent must pass through a node
		// suspended this iteration, so the iteration proves the better of
		// the incumbent and the best suspended f.
		if inc.has && (!hasIterBound || betterF(mode, inc.cost, iterBound)) {
			iterBound, hasIterBound = inc.cost, true
		}
		if hasIterBound {
			bound.offer(iterBound)
		}

		if iterationImproved && !search.Quiet {
			yield(build(false, false, false), false)
		}

		if !suspendedThisIteration {
			// The sweep explored every reachable state at this width
			// without cutting anything: nothing remains to discover.
			yield(build(true, everFeasible, !everFeasible), true)
			return
		}

		width = nextWidth(width, beam)
	}
}

// orderLayer sorts a layer's nodes best-first (better f, then larger g,
// then earlier insertion), matching A*'s open-set ordering so beam
// truncation keeps the most promising candidates.
func orderLayer[S any, C cmp.Ordered](mode OptimizationMode, a *arena[S, C], layer []nodeHandle) {
	insertionSort(layer, func(i, j nodeHandle) bool {
		return betterNode(mode, a.at(i), a.at(j))
	})
}

// insertionSort is a tiny stable sort over node handles; layers are small
// relative to the dominance survey cost already paid per node, so a simple
// O(n^2) sort keeps this file free of an extra sort.Slice closure alloc
// per iteration without mattering for realistic beam widths.
func insertionSort(items []nodeHandle, less func(a, b nodeHandle) bool) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

func bestF[S any, C cmp.Ordered](mode OptimizationMode, a *arena[S, C], layer []nodeHandle) nodeHandle {
	if len(layer) == 0 {
		return noParent
	}
	best := layer[0]
	for _, h := range layer[1:] {
		if betterNode(mode, a.at(h), a.at(best)) {
			best = h
		}
	}
	return best
}

func nextWidth(width int, beam CABSParameters) int {
	grown := int(float64(width) * beam.BeamWidthGrowth)
	if grown <= width {
		grown = width + 1
	}
	if beam.MaxBeamWidth > 0 && grown > beam.MaxBeamWidth {
		grown = beam.MaxBeamWidth
	}
	return grown
}
