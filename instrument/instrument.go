// Package instrument derives tether contexts with prometheus counters
// attached, so a service can watch how many scopes are live, how they
// resolve, and whether already-dead parents are being derived from.
// The wrappers change no semantics; they observe the child's canceler
// and delegate everything else to the tether package.
package instrument

import (
	"time"

	"euphoria.io/tether"
)

func observe(kind string, parent, child tether.Context) {
	if child == parent {
		shortCircuitCount.Inc()
		return
	}
	contextCount.WithLabelValues(kind).Inc()
	liveContexts.Inc()
	child.Canceler().Register(func(cause error) {
		liveContexts.Dec()
		fireCount.WithLabelValues(causeLabel(cause)).Inc()
	})
}

func causeLabel(cause error) string {
	if tether.IsDeadline(cause) {
		return "deadline"
	}
	return "canceled"
}

// WithCancel is tether.WithCancel with metrics.
func WithCancel(ctx tether.Context) (tether.Context, tether.CancelFunc) {
	if ctx == nil {
		ctx = tether.Background()
	}
	child, cancel := tether.WithCancel(ctx)
	observe("cancel", ctx, child)
	return child, cancel
}

// WithDeadline is tether.WithDeadline with metrics.
func WithDeadline(ctx tether.Context, t time.Time) (tether.Context, tether.CancelFunc) {
	if ctx == nil {
		ctx = tether.Background()
	}
	child, cancel := tether.WithDeadline(ctx, t)
	observe("deadline", ctx, child)
	return child, cancel
}

// WithTimeout is tether.WithTimeout with metrics.
func WithTimeout(ctx tether.Context, d time.Duration) (tether.Context, tether.CancelFunc) {
	return WithDeadline(ctx, time.Now().Add(d))
}
