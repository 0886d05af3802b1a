package dpsearch

import "cmp"

// betterF reports whether f1 is strictly better than f2 under mode: lower
// under Minimize, higher under Maximize (spec.md §4.1).
func betterF[C cmp.Ordered](mode OptimizationMode, f1, f2 C) bool {
	if mode == Maximize {
		return f1 > f2
	}
	return f1 < f2
}

// noWorse reports whether g1 is no worse than g2 under mode: a lower (or
// equal) accumulated cost is no worse under Minimize, a higher (or equal)
// one under Maximize (spec.md §4.3).
func noWorse[C cmp.Ordered](mode OptimizationMode, g1, g2 C) bool {
	if mode == Maximize {
		return g1 >= g2
	}
	return g1 <= g2
}

// prunedByIncumbent reports whether a node with priority f cannot improve
// on the incumbent c*: f > c* under Minimize, f < c* under Maximize
// (spec.md §4.1).
func prunedByIncumbent[C cmp.Ordered](mode OptimizationMode, f, incumbent C) bool {
	if mode == Maximize {
		return f < incumbent
	}
	return f > incumbent
}

// betterNode orders two nodes for the open-set priority queue: better
// (strictly lower, resp. higher) f first; among equal f, larger g first
// (deeper nodes reach a feasible incumbent sooner); among equal f and g,
// earlier insertion first. This ordering is deterministic, matching
// spec.md §4.1's tie-breaking invariant and testable property #7.
func betterNode[S any, C cmp.Ordered](mode OptimizationMode, a, b *node[S, C]) bool {
	if a.f != b.f {
		return betterF(mode, a.f, b.f)
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}
