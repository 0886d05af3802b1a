package dpsearch

import "time"

// timer tracks wall-clock elapsed time against an optional budget
// (spec.md §4.6). It reads the monotonic clock with no synchronization —
// the engine is single-threaded, so there is nothing to synchronize
// against (spec.md §5).
type timer struct {
	start  time.Time
	budget time.Duration // <= 0 means unbounded
}

func newTimer(budget time.Duration) *timer {
	return &timer{start: time.Now(), budget: budget}
}

func (t *timer) elapsed() time.Duration { return time.Since(t.start) }

func (t *timer) elapsedSeconds() float64 { return t.elapsed().Seconds() }

// expired reports whether the configured budget has been consumed. A
// non-positive budget never expires.
func (t *timer) expired() bool {
	return t.budget > 0 && t.elapsed() >= t.budget
}
