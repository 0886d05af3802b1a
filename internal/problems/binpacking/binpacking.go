// Package binpacking implements the bin-packing capability: minimize the
// number of bins of fixed capacity needed to pack a set of weighted items.
// Grounded directly on didp-rust-models' bin-packing crate (lib.rs +
// src/bin/bin_packing_rpid.rs): state shape, successor generation,
// dominance rule and dual bound family (LB1/LB2/LB3) are ports of that
// file's DP formulation into dpsearch.Problem.
package binpacking

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/romfontaine/dpsearch/internal/bitset"
	"github.com/romfontaine/dpsearch/pkg/dpsearch"
	"github.com/romfontaine/dpsearch/pkg/dpsearch/dperr"
)

// Instance is a bin-packing instance: n items of given weight, bins of
// fixed capacity.
type Instance struct {
	Capacity int
	Weights  []int
}

// ReadFromFile parses "n capacity" followed by n weights, matching the
// Rust original's whitespace-delimited format.
func ReadFromFile(filename string) (*Instance, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, dperr.Wrap(dperr.InstanceParse, err, "open bin packing instance")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, dperr.New(dperr.InstanceParse, "failed to parse %s", what)
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
	weights := make([]int, n)
	for i := range weights {
		w, err := next("a weight")
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}
	return &Instance{Capacity: capacity, Weights: weights}, nil
}

// Validate reproduces the original's greedy-replay check: feed solution
// (item indices, in packing order) through a first-fit-style replay and
// confirm the bin count matches cost.
func (inst *Instance) Validate(solution []int, cost int) bool {
	n := len(inst.Weights)
	if len(solution) != n {
		fmt.Printf("Invalid solution length: %d != %d\n", len(solution), n)
		return false
	}

	packed := make([]bool, n)
	remaining := 0
	recomputedCost := 0
	for _, i := range solution {
		if i < 0 || i >= n {
			fmt.Printf("Invalid item index: %d\n", i)
			return false
		}
		if packed[i] {
			fmt.Printf("Item %d is packed more than once\n", i)
			return false
		}
		if inst.Weights[i] > remaining {
			remaining = inst.Capacity
			recomputedCost++
		}
		remaining -= inst.Weights[i]
		packed[i] = true
	}
	if recomputedCost != cost {
		fmt.Printf("Invalid cost: %d != %d\n", cost, recomputedCost)
		return false
	}
	return true
}

// PrintSolution prints the bins solution packs into, in packing order.
func (inst *Instance) PrintSolution(solution []int) {
	var bins [][]int
	remaining := 0
	for _, i := range solution {
		if inst.Weights[i] > remaining {
			bins = append(bins, nil)
			remaining = inst.Capacity
		}
		bins[len(bins)-1] = append(bins[len(bins)-1], i)
		remaining -= inst.Weights[i]
	}
	fmt.Printf("Solution: %v\n", bins)
}

// State is one DP state: unpacked names the items not yet assigned to a
// bin, remaining is the leftover capacity of the current (last opened)
// bin, and binNumber counts bins opened so far.
type State struct {
	Remaining int
	Unpacked  bitset.Set
	BinNumber int
}

// Problem implements dpsearch.Problem[State, int] over Instance.
type Problem struct {
	inst *Instance
}

func NewProblem(inst *Instance) *Problem { return &Problem{inst: inst} }

func (p *Problem) Target() State {
	return State{Remaining: 0, Unpacked: bitset.Full(len(p.inst.Weights)), BinNumber: 0}
}

// Successors mirrors the Rust original's two-phase branching: if any
// unpacked item still fits the current bin, branch over each such item
// (packing it, keeping the same bin); only once none fit does it open a
// fresh bin with the lowest-indexed unpacked item still at or above
// binNumber, to break the symmetry of interchangeable bins.
func (p *Problem) Successors(s State) func(yield func(dpsearch.Successor[State, int]) bool) {
	return func(yield func(dpsearch.Successor[State, int]) bool) {
		anyFits := false
		s.Unpacked.Each(func(i int) {
			if p.inst.Weights[i] <= s.Remaining {
				anyFits = true
			}
		})

		if anyFits {
			cont := true
			s.Unpacked.Each(func(i int) {
				if !cont || p.inst.Weights[i] > s.Remaining {
					return
				}
				if s.BinNumber > i+1 {
					return
				}
				succ := State{
					Remaining: s.Remaining - p.inst.Weights[i],
					Unpacked:  s.Unpacked.Without(i),
					BinNumber: s.BinNumber,
				}
				if !yield(dpsearch.Successor[State, int]{State: succ, Weight: 0, Label: dpsearch.Label(i)}) {
					cont = false
				}
			})
			return
		}

		// None of the unpacked items fit the current bin: open a fresh one
		// with the first unpacked item at or after binNumber (breaks the
		// symmetry between interchangeable empty bins). Exactly one
		// successor, matching the Rust original's early return.
		found := false
		s.Unpacked.Each(func(i int) {
			if found || s.BinNumber > i {
				return
			}
			found = true
			succ := State{
				Remaining: p.inst.Capacity - p.inst.Weights[i],
				Unpacked:  s.Unpacked.Without(i),
				BinNumber: s.BinNumber + 1,
			}
			yield(dpsearch.Successor[State, int]{State: succ, Weight: 1, Label: dpsearch.Label(i)})
		})
	}
}

func (p *Problem) BaseCost(s State) (int, bool) {
	if s.Unpacked.IsEmpty() {
		return 0, true
	}
	return 0, false
}

func (p *Problem) Mode() dpsearch.OptimizationMode { return dpsearch.Minimize }

func (p *Problem) Combine(a, b int) int { return dpsearch.Plus(a, b) }

// DualBound returns max(LB1, LB2, LB3): the continuous relaxation bound,
// the large-item packing bound, and a medium-item refinement, each
// adjusted by the capacity already committed in the bin in progress
// (mirroring the Rust original's "state.remaining" correction terms).
func (p *Problem) DualBound(s State) (int, bool) {
	capacity := p.inst.Capacity

	var weights []int
	weightSum := 0
	s.Unpacked.Each(func(i int) {
		w := p.inst.Weights[i]
		weights = append(weights, w)
		weightSum += w
	})

	effectiveSum := weightSum - s.Remaining
	if effectiveSum < 0 {
		effectiveSum = 0
	}
	lb1 := ceilDiv(effectiveSum, capacity)

	lb2 := lb2Bound(capacity, weights)
	if 2*s.Remaining >= capacity {
		lb2--
	}

	lb3 := lb3Bound(capacity, weights)
	if 3*s.Remaining >= capacity {
		lb3--
	}

	best := lb1
	if lb2 > best {
		best = lb2
	}
	if lb3 > best {
		best = lb3
	}
	return best, true
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// lb2Bound is the Martello-Toth L2 bound: items with weight > capacity/2
// ("large") cannot share a bin with one another, so each needs a bin of
// its own; items with weight exactly capacity/2 ("medium") pair at most
// one per large-item bin's leftover space; the remainder is covered by
// the continuous bound on what is left after accounting for large items.
func lb2Bound(capacity int, weights []int) int {
	large, medium, small := 0, 0, 0
	largeWaste, mediumSum, smallSum := 0, 0, 0
	for _, w := range weights {
		switch {
		case 2*w > capacity:
			large++
			largeWaste += capacity - w
		case 2*w == capacity:
			medium++
			mediumSum += w
		default:
			small++
			smallSum += w
		}
	}
	// Medium items pair up two per bin; any leftover medium item, plus
	// all small-item weight, must still fit in the waste left by large
	// items or in fresh bins.
	mediumBins := medium / 2
	leftoverMedium := medium % 2
	extra := leftoverMedium*(capacity/2) + smallSum
	extra -= largeWaste
	if extra < 0 {
		extra = 0
	}
	return large + mediumBins + ceilDiv(extra, capacity)
}

// lb3Bound refines lb2 for items heavier than a third of the capacity,
// the next rung of the standard L2/L3 bin-packing lower-bound family.
func lb3Bound(capacity int, weights []int) int {
	big := 0
	bigWaste := 0
	restSum := 0
	for _, w := range weights {
		if 3*w > capacity {
			big++
			bigWaste += capacity - w
		} else {
			restSum += w
		}
	}
	extra := restSum - bigWaste
	if extra < 0 {
		extra = 0
	}
	return big + ceilDiv(extra, capacity)
}

// Dominance groups states by their unpacked-item set: among states that
// still have the exact same items left to pack, the one with no less
// remaining capacity and no more bins open dominates (Rust original's
// get_key/compare).
type Dominance struct{}

func (Dominance) Key(s State) string { return s.Unpacked.Key() }

func (Dominance) Compare(a, b State) (dpsearch.Ordering, bool) {
	switch {
	case a.Remaining == b.Remaining && a.BinNumber == b.BinNumber:
		return dpsearch.Equal, true
	case a.Remaining >= b.Remaining && a.BinNumber <= b.BinNumber:
		return dpsearch.Greater, true
	case a.Remaining <= b.Remaining && a.BinNumber >= b.BinNumber:
		return dpsearch.Less, true
	default:
		return dpsearch.Equal, false
	}
}

// PackedOrder reconstructs the item-packing order (for Instance.Validate
// and PrintSolution) from a transition-label sequence: each label is the
// packed item's index.
func PackedOrder(transitions []dpsearch.Label) []int {
	order := make([]int, len(transitions))
	for i, l := range transitions {
		order[i] = int(l)
	}
	return order
}
