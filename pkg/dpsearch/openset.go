package dpsearch

import (
	"cmp"
	"container/heap"
)

// openSet is a binary heap of node handles ordered by betterNode, used by
// A* as its best-first frontier (spec.md §4.4: "min-heap keyed by
// (f, -g, insertion-sequence)").
type openSet[S any, C cmp.Ordered] struct {
	mode  OptimizationMode
	arena *arena[S, C]
	items []nodeHandle
}

func newOpenSet[S any, C cmp.Ordered](mode OptimizationMode, a *arena[S, C]) *openSet[S, C] {
	return &openSet[S, C]{mode: mode, arena: a}
}

func (o *openSet[S, C]) Len() int { return len(o.items) }

func (o *openSet[S, C]) Less(i, j int) bool {
	return betterNode(o.mode, o.arena.at(o.items[i]), o.arena.at(o.items[j]))
}

func (o *openSet[S, C]) Swap(i, j int) { o.items[i], o.items[j] = o.items[j], o.items[i] }

func (o *openSet[S, C]) Push(x any) { o.items = append(o.items, x.(nodeHandle)) }

func (o *openSet[S, C]) Pop() any {
	n := len(o.items)
	h := o.items[n-1]
	o.items = o.items[:n-1]
	return h
}

func (o *openSet[S, C]) push(h nodeHandle) { heap.Push(o, h) }

func (o *openSet[S, C]) popFront() (nodeHandle, bool) {
	if len(o.items) == 0 {
		return 0, false
	}
	return heap.Pop(o).(nodeHandle), true
}

func (o *openSet[S, C]) peek() (nodeHandle, bool) {
	if len(o.items) == 0 {
		return 0, false
	}
	return o.items[0], true
}
