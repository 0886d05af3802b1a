package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romfontaine/dpsearch/internal/problems/knapsack"
	"github.com/romfontaine/dpsearch/pkg/dpsearch"
)

// seedInstance is spec.md's §8 seed scenario: profits=[60,100,120],
// weights=[10,20,30], capacity=50 → optimum 220 (items 2 and 3, i.e. the
// 100- and 120-profit items, weighing 20+30=50).
func seedInstance() *knapsack.Instance {
	return &knapsack.Instance{
		Profits:  []int{60, 100, 120},
		Weights:  []int{10, 20, 30},
		Capacity: 50,
		Indices:  []int{0, 1, 2},
	}
}

func TestKnapsackAStarOptimal(t *testing.T) {
	inst := seedInstance()
	problem := knapsack.NewProblem(inst, 1e-6)
	solver := dpsearch.NewAStar[knapsack.State, int, int](problem, knapsack.Dominance{}, dpsearch.SearchParameters{})

	var last dpsearch.Solution[int]
	for {
		sol, done := solver.SearchNext()
		last = sol
		if done {
			break
		}
	}

	require.True(t, last.HasCost)
	assert.Equal(t, 220, last.Cost)
	assert.True(t, last.IsOptimal)

	packed := knapsack.PackedPositions(last.Transitions)
	assert.True(t, inst.Validate(packed, last.Cost))
}

func TestKnapsackCABSOptimal(t *testing.T) {
	inst := seedInstance()
	problem := knapsack.NewProblem(inst, 1e-6)
	solver := dpsearch.NewCABS[knapsack.State, int, int](problem, knapsack.Dominance{}, dpsearch.SearchParameters{}, dpsearch.DefaultCABSParameters())

	var last dpsearch.Solution[int]
	for {
		sol, done := solver.SearchNext()
		last = sol
		if done {
			break
		}
	}

	require.True(t, last.HasCost)
	assert.Equal(t, 220, last.Cost)
	assert.True(t, last.IsOptimal)
}

func TestKnapsackValidateRejectsOverCapacity(t *testing.T) {
	inst := seedInstance()
	assert.False(t, inst.Validate([]int{0, 1, 2}, 280), "all three items exceed capacity 50")
}
