package scheduler

import "context"

// ProgressFunc receives a monotonically non-decreasing fraction in [0,1].
// A nil ProgressFunc is always safe to call via report.
type ProgressFunc func(fraction float64)

func report(p ProgressFunc, fraction float64) {
	if p != nil {
		p(fraction)
	}
}

// Kernel is a unit of pooled work: a pure compute function that checks
// ctx for cancellation at every outer-loop boundary and reports its own
// progress. Kernels must not share mutable state with each other — each
// owns whatever it closes over.
type Kernel func(ctx context.Context, progress ProgressFunc) (any, error)

// Result is a task's terminal outcome.
type Result struct {
	Status Status
	Value  any
	Err    error
}

// Handle is returned by Submit; it observes one task's progress stream and
// terminal event without touching the pool's internals.
type Handle struct {
	id       uint64
	progress chan float64
	done     chan struct{}
	result   Result
}

// ID identifies the task this handle observes.
func (h *Handle) ID() uint64 { return h.id }

// Progress streams the task's reported fractions in order; it is closed
// when the task reaches a terminal state.
func (h *Handle) Progress() <-chan float64 { return h.progress }

// Wait blocks until the task reaches a terminal state, or ctx is done
// first (in which case the task keeps running in the background — Wait
// does not cancel it; cancel via the context passed to Submit for that).
func (h *Handle) Wait(ctx context.Context) (Result, error) {
	select {
	case <-h.done:
		return h.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
