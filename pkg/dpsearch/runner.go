package dpsearch

import "cmp"

// Solver is the shared "search_next" contract both solvers implement
// (spec.md §2, layer 3): repeated calls pull one step of progress at a
// time, each returning the latest Solution and whether the search has
// terminated (optimal, infeasible, or budget expired).
type Solver[C cmp.Ordered] interface {
	SearchNext() (Solution[C], bool)
}

// runner adapts a recursive/iterative search body into the pull-based
// SearchNext contract using a single worker goroutine as a coroutine: the
// body calls yield at every point spec.md §5 calls a "suspension point",
// blocking until the next SearchNext call resumes it. This keeps the
// search algorithms themselves written as ordinary sequential Go (loops,
// recursion) rather than as hand-rolled state machines, while preserving
// spec.md §5's single-threaded, cooperative concurrency model: exactly one
// of {producer, consumer} ever runs at a time, handed off by an unbuffered
// channel, and the body never performs I/O (the driver owns all side
// effects per spec.md §5 and §4.7).
type runnerMsg[C cmp.Ordered] struct {
	sol        Solution[C]
	terminated bool
}

type runner[C cmp.Ordered] struct {
	req      chan struct{}
	resp     chan runnerMsg[C]
	finished bool
	last     Solution[C]
}

// newRunner starts body as the producer goroutine. body must call yield
// exactly at each suspension point, and must call it one final time with
// terminated=true before returning.
func newRunner[C cmp.Ordered](body func(yield func(sol Solution[C], terminated bool))) *runner[C] {
	r := &runner[C]{
		req:  make(chan struct{}),
		resp: make(chan runnerMsg[C]),
	}
	go func() {
		<-r.req
		body(func(sol Solution[C], terminated bool) {
			r.resp <- runnerMsg[C]{sol: sol, terminated: terminated}
			if !terminated {
				<-r.req
			}
		})
	}()
	return r
}

func (r *runner[C]) SearchNext() (Solution[C], bool) {
	if r.finished {
		return r.last, true
	}
	r.req <- struct{}{}
	msg := <-r.resp
	r.last = msg.sol
	r.finished = msg.terminated
	return msg.sol, msg.terminated
}
