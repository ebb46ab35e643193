package tether

// A CancelFunc cancels the context it was returned with. It may be
// called by multiple goroutines simultaneously; only the first call has
// any effect. Callers should invoke it once work on the context
// completes, even if the context fired some other way, so the cascade
// listener is detached from the parent.
type CancelFunc func()

type cancelCtx struct {
	parent Context
	c      *Canceler
}

func (c *cancelCtx) Name() string { return "Cancel" }

func (c *cancelCtx) Value(key interface{}) interface{} {
	val, _ := c.ValueOK(key)
	return val
}

func (c *cancelCtx) ValueOK(key interface{}) (interface{}, bool) {
	return c.parent.ValueOK(key)
}

func (c *cancelCtx) Canceler() *Canceler { return c.c }
func (c *cancelCtx) Canceled() bool      { return c.c.Fired() }
func (c *cancelCtx) Err() error          { return c.c.Cause() }

func (c *cancelCtx) String() string {
	return c.parent.String() + ".WithCancel"
}

// WithCancel derives a cancelable child of ctx. Canceling the child,
// via the returned CancelFunc or its own Canceler, never affects ctx;
// canceling ctx cancels the child, synchronously, with ctx's cause.
//
// A nil ctx roots the child at Background, yielding a standalone
// cancelable context.
//
// If ctx is already canceled there is nothing left to cascade into:
// ctx itself is returned along with a no-op CancelFunc.
//
// The returned CancelFunc fires the child with a generic canceled cause
// and detaches the child's cascade listener from ctx's Canceler, so
// repeated derive/cancel cycles do not grow the parent's listener set.
// Calling it after the child already fired is a no-op.
func WithCancel(ctx Context) (Context, CancelFunc) {
	if ctx == nil {
		ctx = Background()
	}
	pc := ctx.Canceler()
	if pc != nil && pc.Fired() {
		return ctx, func() {}
	}

	c := NewCanceler()
	child := &cancelCtx{parent: ctx, c: c}
	if pc == nil {
		return child, func() { c.Fire(nil) }
	}

	tok := pc.Register(func(cause error) { c.Fire(cause) })
	cancel := func() {
		c.Fire(nil)
		pc.Unregister(tok)
	}
	return child, cancel
}
