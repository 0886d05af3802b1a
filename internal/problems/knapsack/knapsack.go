// Package knapsack implements the 0/1 knapsack capability: maximize total
// profit of a subset of items whose total weight fits the capacity.
// Grounded directly on didp-rust-models' knapsack crate (lib.rs +
// src/bin/knapsack_rpid.rs): item ordering, dual bound and dominance rule
// are all ports of that file's DP formulation into dpsearch.Problem.
package knapsack

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/romfontaine/dpsearch/pkg/dpsearch"
	"github.com/romfontaine/dpsearch/pkg/dpsearch/dperr"
)

// Instance is a 0/1 knapsack instance: profits and weights are stored
// re-ordered by descending profit/weight efficiency (ascending
// weight/profit), matching the Rust original so the dual bound's suffix
// scans are meaningful. indices records, for each re-ordered position, the
// item's original input index, so solutions can be reported against the
// input file's numbering.
type Instance struct {
	Profits  []int
	Weights  []int
	Capacity int
	Indices  []int
}

// ReadFromFile parses "n capacity" on the first line followed by n lines
// of "profit weight", matching the Rust original's whitespace-delimited
// format.
func ReadFromFile(filename string) (*Instance, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, dperr.Wrap(dperr.InstanceParse, err, "open knapsack instance")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, dperr.New(dperr.InstanceParse, "failed to parse "+what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, dperr.Wrap(dperr.InstanceParse, err, "parse %s", what)
		}
		return v, nil
	}

	n, err := next("the number of items")
	if err != nil {
		return nil, err
	}
	capacity, err := next("the capacity")
	if err != nil {
		return nil, err
	}

	rawProfits := make([]int, n)
	rawWeights := make([]int, n)
	for i := 0; i < n; i++ {
		p, err := next("a profit")
		if err != nil {
			return nil, err
		}
		w, err := next("a weight")
		if err != nil {
			return nil, err
		}
		rawProfits[i] = p
		rawWeights[i] = w
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		i, j := indices[a], indices[b]
		return float64(rawWeights[i])/float64(rawProfits[i]) < float64(rawWeights[j])/float64(rawProfits[j])
	})

	profits := make([]int, n)
	weights := make([]int, n)
	for pos, i := range indices {
		profits[pos] = rawProfits[i]
		weights[pos] = rawWeights[i]
	}

	return &Instance{Profits: profits, Weights: weights, Capacity: capacity, Indices: indices}, nil
}

// Validate reports whether packedPositions (re-ordered positions, not
// original indices) fit the capacity and sum to profit.
func (inst *Instance) Validate(packedPositions []int, profit int) bool {
	totalWeight := 0
	for _, i := range packedPositions {
		totalWeight += inst.Weights[i]
	}
	if totalWeight > inst.Capacity {
		fmt.Printf("Total weight %d exceeds capacity %d\n", totalWeight, inst.Capacity)
		return false
	}
	recomputed := 0
	for _, i := range packedPositions {
		recomputed += inst.Profits[i]
	}
	if recomputed != profit {
		fmt.Printf("Invalid profit: %d != %d\n", profit, recomputed)
		return false
	}
	return true
}

// PrintSolution prints packedPositions translated back to original input
// indices, ascending.
func (inst *Instance) PrintSolution(packedPositions []int) {
	original := make([]int, len(packedPositions))
	for i, p := range packedPositions {
		original[i] = inst.Indices[p]
	}
	sort.Ints(original)
	fmt.Printf("Packed Items: %v\n", original)
}

// Labels used on successor transitions: 0 means "pack this item", 1 means
// "leave it out" — mirrors the Rust original exactly so history CSVs and
// PackedPositions agree on the convention.
const (
	LabelPack   dpsearch.Label = 0
	LabelIgnore dpsearch.Label = 1
)

// State is one DP state: current names the next item to decide on (items
// are processed in instance order, already re-sorted by efficiency), and
// remaining is the leftover capacity.
type State struct {
	Current   int
	Remaining int
}

// Problem implements dpsearch.Problem[State, int] over Instance, with
// suffix-scan dual bounds precomputed once at construction (Knapsack::new
// in the Rust original).
type Problem struct {
	inst *Instance

	totalProfitAfter   []int
	maxEfficiencyAfter []float64
}

// NewProblem precomputes the suffix sums/efficiency bounds used by
// DualBound. epsilon loosens the efficiency bound exactly as the Rust
// original does, to absorb floating-point rounding without losing
// admissibility.
func NewProblem(inst *Instance, epsilon float64) *Problem {
	n := len(inst.Profits)
	totalProfitAfter := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		totalProfitAfter[i] = totalProfitAfter[i+1] + inst.Profits[i]
	}

	maxEfficiencyAfter := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		eff := float64(inst.Profits[i])/float64(inst.Weights[i]) + epsilon
		if eff < maxEfficiencyAfter[i+1] {
			eff = maxEfficiencyAfter[i+1]
		}
		maxEfficiencyAfter[i] = eff
	}

	return &Problem{inst: inst, totalProfitAfter: totalProfitAfter, maxEfficiencyAfter: maxEfficiencyAfter}
}

func (p *Problem) Target() State { return State{Current: 0, Remaining: p.inst.Capacity} }

func (p *Problem) Successors(s State) func(yield func(dpsearch.Successor[State, int]) bool) {
	return func(yield func(dpsearch.Successor[State, int]) bool) {
		ignore := State{Current: s.Current + 1, Remaining: s.Remaining}
		if p.inst.Weights[s.Current] > s.Remaining {
			yield(dpsearch.Successor[State, int]{State: ignore, Weight: 0, Label: LabelIgnore})
			return
		}
		pack := State{Current: s.Current + 1, Remaining: s.Remaining - p.inst.Weights[s.Current]}
		if !yield(dpsearch.Successor[State, int]{State: pack, Weight: p.inst.Profits[s.Current], Label: LabelPack}) {
			return
		}
		yield(dpsearch.Successor[State, int]{State: ignore, Weight: 0, Label: LabelIgnore})
	}
}

func (p *Problem) BaseCost(s State) (int, bool) {
	if s.Current == len(p.inst.Profits) {
		return 0, true
	}
	return 0, false
}

func (p *Problem) DualBound(s State) (int, bool) {
	if s.Current == len(p.inst.Profits) {
		return 0, true
	}
	maxTotalProfit := p.totalProfitAfter[s.Current]
	maxEfficiencyBound := int(float64(s.Remaining) * p.maxEfficiencyAfter[s.Current])
	if maxEfficiencyBound < maxTotalProfit {
		return maxEfficiencyBound, true
	}
	return maxTotalProfit, true
}

func (p *Problem) Mode() dpsearch.OptimizationMode { return dpsearch.Maximize }

func (p *Problem) Combine(a, b int) int { return dpsearch.Plus(a, b) }

// Dominance groups states by the item index they've reached and prefers
// the one with more remaining capacity — with the same items decided,
// more room left can never be worse (Rust original's get_key/compare).
type Dominance struct{}

func (Dominance) Key(s State) int { return s.Current }

func (Dominance) Compare(a, b State) (dpsearch.Ordering, bool) {
	switch {
	case a.Remaining == b.Remaining:
		return dpsearch.Equal, true
	case a.Remaining > b.Remaining:
		return dpsearch.Greater, true
	default:
		return dpsearch.Less, true
	}
}

// PackedPositions extracts re-ordered positions (not original indices)
// from a transition-label sequence: position i was packed iff its label
// is LabelPack.
func PackedPositions(transitions []dpsearch.Label) []int {
	var packed []int
	for i, l := range transitions {
		if l == LabelPack {
			packed = append(packed, i)
		}
	}
	return packed
}
