package dpsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBoundTrackerMonotoneMinimize exercises testable property #2: under
// minimization the surfaced bound never decreases even if offered a looser
// (smaller) candidate after a tighter one.
func TestBoundTrackerMonotoneMinimize(t *testing.T) {
	tr := newBoundTracker[int](Minimize)
	assert.Equal(t, 5, tr.offer(5))
	assert.Equal(t, 8, tr.offer(8))
	assert.Equal(t, 8, tr.offer(3), "a looser candidate must not regress the surfaced bound")
	assert.Equal(t, 10, tr.offer(10))
}

func TestBoundTrackerMonotoneMaximize(t *testing.T) {
	tr := newBoundTracker[int](Maximize)
	assert.Equal(t, 20, tr.offer(20))
	assert.Equal(t, 12, tr.offer(12))
	assert.Equal(t, 12, tr.offer(30), "a looser candidate must not regress the surfaced bound")
	assert.Equal(t, 5, tr.offer(5))
}
