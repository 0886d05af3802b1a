package dpsearch

import "cmp"

// registry maps a dominance key to the live nodes sharing that key
// (spec.md §4.3). A "live" node here means not yet superseded by a
// dominating node — closed (expanded) nodes remain live for A*'s
// dominance checks, and CABS keeps nodes cut from a beam in the registry
// rather than discarding them, so their dominance information survives
// for the rest of that iteration (each CABS iteration builds a new
// registry).
type registry[S any, C cmp.Ordered, K comparable] struct {
	mode  OptimizationMode
	dom   Dominance[S, K]
	arena *arena[S, C]
	group map[K][]nodeHandle
}

func newRegistry[S any, C cmp.Ordered, K comparable](mode OptimizationMode, dom Dominance[S, K], a *arena[S, C]) *registry[S, C, K] {
	return &registry[S, C, K]{mode: mode, dom: dom, arena: a, group: map[K][]nodeHandle{}}
}

// admit performs the dominance survey of spec.md §4.3 for a freshly
// allocated candidate node and, if the candidate survives, inserts it into
// its group. It returns false when the candidate is dominated on arrival
// (the caller must discard it) and true otherwise, in which case any
// existing member the candidate itself dominates has been marked dead.
func (r *registry[S, C, K]) admit(h nodeHandle) bool {
	c := r.arena.at(h)
	key := r.dom.Key(c.state)
	members := r.group[key]

	// Build into a fresh slice rather than filtering members in place:
	// r.group[key] must only be mutated once the candidate is known to be
	// fully admitted, since a later member can still trigger a discard
	// (return false) after an earlier member has already been superseded.
	survivors := make([]nodeHandle, 0, len(members)+1)
	for _, mh := range members {
		m := r.arena.at(mh)
		if m.dead {
			continue // already tombstoned by an earlier admission
		}

		if ord, ok := r.dom.Compare(m.state, c.state); ok {
			switch {
			case ord == Greater && noWorse(r.mode, m.g, c.g):
				// m dominates c and is no worse: discard c. Any member
				// already marked dead above stays dead; r.group[key] is
				// untouched so it still reflects the pre-survey state
				// aside from those tombstones.
				return false
			case ord == Less && noWorse(r.mode, c.g, m.g):
				// c dominates m and is no worse: supersede m.
				r.supersede(mh)
				continue // drop m from survivors
			case ord == Equal:
				// Equality in the partial order is resolved by f-value:
				// the strictly better node survives; equal f keeps the
				// first-inserted one.
				if betterF(r.mode, c.f, m.f) {
					r.supersede(mh)
					continue
				}
				if betterF(r.mode, m.f, c.f) {
					return false
				}
				// equal f: first-inserted (m) wins.
				return false
			}
		}
		survivors = append(survivors, mh)
	}

	survivors = append(survivors, h)
	r.group[key] = survivors
	return true
}

// supersede tombstones a node that has been dominated by a better
// candidate. A* never revisits a dead node; CABS keeps it around (already
// marked dead here) purely so later dominance surveys at the same key see
// it is gone rather than re-deriving the same fact.
func (r *registry[S, C, K]) supersede(h nodeHandle) {
	n := r.arena.at(h)
	n.dead = true
}
