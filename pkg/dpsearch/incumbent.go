package dpsearch

import "cmp"

// incumbentTracker holds the best base-case cost observed so far and the
// transition labels that produced it (spec.md §3, "Incumbent").
type incumbentTracker[C cmp.Ordered] struct {
	mode   OptimizationMode
	has    bool
	cost   C
	labels []Label
}

func newIncumbentTracker[C cmp.Ordered](mode OptimizationMode) *incumbentTracker[C] {
	return &incumbentTracker[C]{mode: mode}
}

// offer records (total, labels) as the new incumbent if it strictly
// improves on the current one (or there is none yet), returning whether it
// did.
func (t *incumbentTracker[C]) offer(total C, labels []Label) bool {
	if !t.has || betterF(t.mode, total, t.cost) {
		t.has = true
		t.cost = total
		t.labels = labels
		return true
	}
	return false
}
