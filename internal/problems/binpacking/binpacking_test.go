package binpacking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romfontaine/dpsearch/internal/problems/binpacking"
	"github.com/romfontaine/dpsearch/pkg/dpsearch"
)

// seedInstance is spec.md's §8 seed scenario: weights=[4,8,1,4,2,1],
// capacity=10 → optimum 2 bins.
func seedInstance() *binpacking.Instance {
	return &binpacking.Instance{Capacity: 10, Weights: []int{4, 8, 1, 4, 2, 1}}
}

func TestBinPackingAStarOptimal(t *testing.T) {
	inst := seedInstance()
	problem := binpacking.NewProblem(inst)
	solver := dpsearch.NewAStar[binpacking.State, int, string](problem, binpacking.Dominance{}, dpsearch.SearchParameters{})

	var last dpsearch.Solution[int]
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

	order := binpacking.PackedOrder(last.Transitions)
	assert.True(t, inst.Validate(order, last.Cost))
}

func TestBinPackingCABSOptimal(t *testing.T) {
	inst := seedInstance()
	problem := binpacking.NewProblem(inst)
	solver := dpsearch.NewCABS[binpacking.State, int, string](problem, binpacking.Dominance{}, dpsearch.SearchParameters{}, dpsearch.DefaultCABSParameters())

	var last dpsearch.Solution[int]
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

func TestBinPackingValidateDetectsMismatchedCost(t *testing.T) {
	inst := seedInstance()
	order := []int{0, 1, 2, 3, 4, 5}
	assert.False(t, inst.Validate(order, 1), "claiming 1 bin for this instance is wrong")
}
