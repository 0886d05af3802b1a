package dpsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncumbentTrackerMinimize(t *testing.T) {
	tr := newIncumbentTracker[int](Minimize)
	assert.False(t, tr.has)

	assert.True(t, tr.offer(10, []Label{1}))
	assert.Equal(t, 10, tr.cost)

	assert.False(t, tr.offer(10, []Label{2}), "equal cost is not an improvement")
	assert.False(t, tr.offer(12, []Label{3}), "worse cost is not an improvement")
	assert.True(t, tr.offer(4, []Label{4}))
	assert.Equal(t, 4, tr.cost)
	assert.Equal(t, []Label{4}, tr.labels)
}

func TestIncumbentTrackerMaximize(t *testing.T) {
	tr := newIncumbentTracker[int](Maximize)
	assert.True(t, tr.offer(10, nil))
	assert.False(t, tr.offer(5, nil))
	assert.True(t, tr.offer(20, nil))
	assert.Equal(t, 20, tr.cost)
}
