package dpsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coinChange is a tiny self-contained capability used to exercise the
// engine's mechanics (§8 testable properties) without pulling in the
// concrete reference problems, which live in a separate module path and
// would otherwise create an import cycle back into this package's tests.
//
// It models making exact change for target using the fewest coins from
// coins: minimize the coin count, base case at remaining == 0, dual bound
// ceil(remaining / maxCoin) — admissible since no coin is worth more than
// maxCoin.
type coinChange struct {
	coins   []int
	maxCoin int
}

type coinState struct{ remaining int }

func newCoinChange(coins []int) *coinChange {
	max := 0
	for _, c := range coins {
		if c > max {
			max = c
		}
	}
	return &coinChange{coins: coins, maxCoin: max}
}

// withStart binds the amount to make change for: Problem.Target takes no
// argument, so the amount owed is fixed at construction instead.
func (c *coinChange) withStart(amount int) *coinChangeAt {
	return &coinChangeAt{coinChange: c, start: amount}
}

type coinChangeAt struct {
	*coinChange
	start int
}

func (c *coinChangeAt) Target() coinState { return coinState{remaining: c.start} }

func (c *coinChangeAt) Successors(s coinState) func(yield func(Successor[coinState, int]) bool) {
	return func(yield func(Successor[coinState, int]) bool) {
		for _, coin := range c.coins {
			if coin > s.remaining {
				continue
			}
			succ := coinState{remaining: s.remaining - coin}
			if !yield(Successor[coinState, int]{State: succ, Weight: 1, Label: Label(coin)}) {
				return
			}
		}
	}
}

func (c *coinChangeAt) BaseCost(s coinState) (int, bool) {
	if s.remaining == 0 {
		return 0, true
	}
	return 0, false
}

func (c *coinChangeAt) DualBound(s coinState) (int, bool) {
	if s.remaining == 0 {
		return 0, true
	}
	return (s.remaining + c.maxCoin - 1) / c.maxCoin, true
}

func (c *coinChangeAt) Mode() OptimizationMode { return Minimize }

func (c *coinChangeAt) Combine(a, b int) int { return Plus(a, b) }

func TestAStarFindsOptimalCoinChange(t *testing.T) {
	problem := newCoinChange([]int{1, 3, 4}).withStart(6)
	solver := NewAStar[coinState, int, struct{}](problem, NoDominance[coinState](), SearchParameters{})

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
	assert.False(t, last.IsInfeasible)
}

func TestAStarOptimalityOnEmpty(t *testing.T) {
	// Property #6: draining open always ends in either infeasible or optimal.
	problem := newCoinChange([]int{2}).withStart(3) // 3 is unreachable with only coin 2
	solver := NewAStar[coinState, int, struct{}](problem, NoDominance[coinState](), SearchParameters{})

	var last Solution[int]
	for {
		sol, done := solver.SearchNext()
		last = sol
		if done {
			break
		}
	}
	assert.True(t, last.IsInfeasible || last.IsOptimal)
	assert.False(t, last.HasCost)
	assert.True(t, last.IsInfeasible)
}

func TestAStarMonotoneBoundAndIncumbent(t *testing.T) {
	problem := newCoinChange([]int{1, 3, 4}).withStart(50)
	solver := NewAStar[coinState, int, struct{}](problem, NoDominance[coinState](), SearchParameters{})

	var prevBound int
	haveBound := false
	var prevCost int
	haveCost := false

	for {
		sol, done := solver.SearchNext()
		if sol.HasBestBound {
			if haveBound {
				assert.GreaterOrEqual(t, sol.BestBound, prevBound, "bound must not regress under minimize")
			}
			prevBound = sol.BestBound
			haveBound = true
		}
		if sol.HasCost {
			if haveCost {
				assert.LessOrEqual(t, sol.Cost, prevCost, "incumbent must not worsen")
			}
			prevCost = sol.Cost
			haveCost = true
		}
		if done {
			break
		}
	}
}

func TestAStarBudgetExpiry(t *testing.T) {
	problem := newCoinChange([]int{1, 3, 4}).withStart(1000000)
	solver := NewAStar[coinState, int, struct{}](problem, NoDominance[coinState](), SearchParameters{TimeLimit: time.Nanosecond})

	sol, done := solver.SearchNext()
	assert.True(t, done)
	assert.True(t, sol.Terminated)
}
