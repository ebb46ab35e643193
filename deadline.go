package tether

import "time"

type deadlineKey struct{}

// Deadline returns the earliest deadline pending on ctx's chain and
// whether one is set.
func Deadline(ctx Context) (time.Time, bool) {
	v, ok := ctx.ValueOK(deadlineKey{})
	if !ok {
		return time.Time{}, false
	}
	return v.(time.Time), true
}

// WithDeadline derives a child of ctx that cancels itself with a
// deadline error when the wall clock reaches t.
//
// If ctx is already canceled, ctx itself is returned with a no-op
// CancelFunc, as in WithCancel. If an ancestor already carries a
// deadline at or before t, the new deadline can never fire first and
// WithDeadline degrades to a plain WithCancel. If t has already
// passed, the child is returned already fired with a deadline error.
//
// Cancellation cascading from ctx stops the pending timer and carries
// ctx's cause, not a deadline error; the deadline error is produced
// only when the timer actually elapses. The returned CancelFunc stops
// the timer, detaches from ctx, and fires a plain canceled cause.
func WithDeadline(ctx Context, t time.Time) (Context, CancelFunc) {
	if ctx == nil {
		ctx = Background()
	}
	pc := ctx.Canceler()
	if pc != nil && pc.Fired() {
		return ctx, func() {}
	}
	if cur, ok := Deadline(ctx); ok && !cur.After(t) {
		return WithCancel(ctx)
	}

	c := NewCanceler()
	child := &cancelCtx{
		parent: WithValue(ctx, deadlineKey{}, t),
		c:      c,
	}

	d := time.Until(t)
	if d <= 0 {
		c.Fire(NewDeadline(nil))
		return child, func() { c.Fire(nil) }
	}

	timer := time.AfterFunc(d, func() {
		c.Fire(NewDeadline(nil))
	})
	if pc == nil {
		return child, func() {
			timer.Stop()
			c.Fire(nil)
		}
	}

	tok := pc.Register(func(cause error) {
		timer.Stop()
		c.Fire(cause)
	})
	cancel := func() {
		timer.Stop()
		c.Fire(nil)
		pc.Unregister(tok)
	}
	return child, cancel
}

// WithTimeout derives a child of ctx that cancels itself with a
// deadline error after d elapses. It is shorthand for WithDeadline at
// now+d.
func WithTimeout(ctx Context, d time.Duration) (Context, CancelFunc) {
	return WithDeadline(ctx, time.Now().Add(d))
}
