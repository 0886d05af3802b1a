package dpsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCABSCompleteness exercises property #5: for a finite state space,
// CABS with any initial width and growth r > 1 terminates with the
// optimum and is_optimal = true.
func TestCABSCompleteness(t *testing.T) {
	problem := newCoinChange([]int{1, 3, 4}).withStart(6)
	beam := CABSParameters{InitialBeamWidth: 1, BeamWidthGrowth: 2}
	solver := NewCABS[coinState, int, struct{}](problem, NoDominance[coinState](), SearchParameters{}, beam)

	var last Solution[int]
	for {
		sol, done := solver.SearchNext()
		last = sol
		if done {
			break
		}
	}

	require.True(t, last.HasCost)
	assert.Equal(t, 2, last.Cost)
	assert.True(t, last.IsOptimal)
}

func TestCABSInfeasible(t *testing.T) {
	problem := newCoinChange([]int{2}).withStart(3)
	solver := NewCABS[coinState, int, struct{}](problem, NoDominance[coinState](), SearchParameters{}, DefaultCABSParameters())

	var last Solution[int]
	for {
		sol, done := solver.SearchNext()
		last = sol
		if done {
			break
		}
	}
	assert.True(t, last.IsInfeasible)
	assert.False(t, last.HasCost)
}

// TestAStarAndCABSAgree checks both solvers converge on the same optimum
// for the same instance, as spec.md §8 implies by grounding both on the
// same admissibility/completeness properties.
func TestAStarAndCABSAgree(t *testing.T) {
	amounts := []int{0, 1, 2, 5, 6, 11, 23, 37}
	coins := []int{1, 3, 4}

	for _, amount := range amounts {
		aProblem := newCoinChange(coins).withStart(amount)
		aSolver := NewAStar[coinState, int, struct{}](aProblem, NoDominance[coinState](), SearchParameters{})
		var aLast Solution[int]
		for {
			sol, done := aSolver.SearchNext()
			aLast = sol
			if done {
				break
			}
		}

		cProblem := newCoinChange(coins).withStart(amount)
		cSolver := NewCABS[coinState, int, struct{}](cProblem, NoDominance[coinState](), SearchParameters{}, DefaultCABSParameters())
		var cLast Solution[int]
		for {
			sol, done := cSolver.SearchNext()
			cLast = sol
			if done {
				break
			}
		}

		assert.Equal(t, aLast.HasCost, cLast.HasCost, "amount=%d", amount)
		if aLast.HasCost {
			assert.Equal(t, aLast.Cost, cLast.Cost, "amount=%d", amount)
		}
	}
}
