package dpsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetterF(t *testing.T) {
	assert.True(t, betterF(Minimize, 3, 5))
	assert.False(t, betterF(Minimize, 5, 3))
	assert.False(t, betterF(Minimize, 5, 5))

	assert.True(t, betterF(Maximize, 5, 3))
	assert.False(t, betterF(Maximize, 3, 5))
}

func TestNoWorse(t *testing.T) {
	assert.True(t, noWorse(Minimize, 3, 3))
	assert.True(t, noWorse(Minimize, 2, 3))
	assert.False(t, noWorse(Minimize, 4, 3))

	assert.True(t, noWorse(Maximize, 3, 3))
	assert.True(t, noWorse(Maximize, 4, 3))
	assert.False(t, noWorse(Maximize, 2, 3))
}

func TestPrunedByIncumbent(t *testing.T) {
	assert.True(t, prunedByIncumbent(Minimize, 10, 5))
	assert.False(t, prunedByIncumbent(Minimize, 5, 5))
	assert.False(t, prunedByIncumbent(Minimize, 4, 5))

	assert.True(t, prunedByIncumbent(Maximize, 4, 5))
	assert.False(t, prunedByIncumbent(Maximize, 5, 5))
	assert.False(t, prunedByIncumbent(Maximize, 6, 5))
}

func TestBetterNodeTieBreaking(t *testing.T) {
	a := &node[int, int]{f: 5, g: 3, seq: 1}
	b := &node[int, int]{f: 5, g: 3, seq: 2}
	assert.True(t, betterNode(Minimize, a, b), "earlier insertion wins an exact tie")
	assert.False(t, betterNode(Minimize, b, a))

	deeper := &node[int, int]{f: 5, g: 4, seq: 9}
	shallower := &node[int, int]{f: 5, g: 1, seq: 0}
	assert.True(t, betterNode(Minimize, deeper, shallower), "larger g wins among equal f")

	better := &node[int, int]{f: 2, g: 100, seq: 50}
	worse := &node[int, int]{f: 3, g: 0, seq: 0}
	assert.True(t, betterNode(Minimize, better, worse), "f dominates g and insertion order")
}
