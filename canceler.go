package tether

import "sync"

// A Registration identifies a callback registered with a Canceler, for
// later removal with Unregister. Callbacks are identified by token
// rather than by function value, since function values are not
// comparable.
type Registration uint64

// A Canceler is a one-shot, idempotent cancellation event source. It
// holds a queue of pending callbacks and fires at most once, delivering
// the captured cause to every callback in registration order. A
// callback registered after firing is invoked immediately.
//
// All methods are safe for concurrent use. Only the first call to Fire
// has any effect.
type Canceler struct {
	mu     sync.Mutex
	fired  bool
	firing bool
	cause  error
	queue  []entry
	lastID uint64
	done   chan struct{}
}

type entry struct {
	id uint64
	fn func(cause error)
}

// NewCanceler returns a Canceler in the pending state. Standalone
// cancelers back root cancelable contexts; WithCancel builds one per
// derived context.
func NewCanceler() *Canceler {
	return &Canceler{}
}

// Register arranges for fn to be invoked with the cancellation cause
// when the Canceler fires. If the Canceler already fired and is not
// mid-drain, fn is invoked synchronously now and nothing is retained;
// the returned token is zero. Registrations made while a drain is in
// progress join the tail of the same drain and are invoked before Fire
// returns.
//
// Register panics if fn is nil.
func (c *Canceler) Register(fn func(cause error)) Registration {
	if fn == nil {
		panic("tether: Register called with nil callback")
	}
	c.mu.Lock()
	if c.fired && !c.firing {
		cause := c.cause
		c.mu.Unlock()
		fn(cause)
		return 0
	}
	c.lastID++
	id := c.lastID
	c.queue = append(c.queue, entry{id: id, fn: fn})
	c.mu.Unlock()
	return Registration(id)
}

// Unregister removes the pending callback identified by tok. It is a
// no-op if the callback already fired, was already removed, or tok is
// zero. It never errors.
func (c *Canceler) Unregister(tok Registration) {
	if tok == 0 {
		return
	}
	c.mu.Lock()
	for i, e := range c.queue {
		if e.id == uint64(tok) {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
}

// Fire cancels with the given cause. The first call captures the cause
// (a nil cause becomes a generic canceled error; any other error is
// decorated to satisfy IsCanceled) and synchronously drains the pending
// queue in first-registered-first-fired order. Callbacks registered
// during the drain, directly or transitively, are appended and drained
// in the same pass. Subsequent calls, including reentrant calls from
// within a draining callback, are no-ops.
func (c *Canceler) Fire(cause error) {
	c.mu.Lock()
	if c.fired {
		c.mu.Unlock()
		return
	}
	c.fired = true
	c.firing = true
	c.cause = NewCanceled(cause)
	if c.done != nil {
		close(c.done)
	}
	for len(c.queue) > 0 {
		e := c.queue[0]
		c.queue = c.queue[1:]
		captured := c.cause
		c.mu.Unlock()
		e.fn(captured)
		c.mu.Lock()
	}
	c.firing = false
	c.mu.Unlock()
}

// Fired reports whether the Canceler has fired. Firing is monotonic;
// once true, Fired never reports false again.
func (c *Canceler) Fired() bool {
	c.mu.Lock()
	fired := c.fired
	c.mu.Unlock()
	return fired
}

// Cause returns the error captured at firing, or nil if the Canceler
// has not fired.
func (c *Canceler) Cause() error {
	c.mu.Lock()
	cause := c.cause
	c.mu.Unlock()
	return cause
}

// Pending returns the number of callbacks registered and not yet
// invoked.
func (c *Canceler) Pending() int {
	c.mu.Lock()
	n := len(c.queue)
	c.mu.Unlock()
	return n
}

// Done returns a channel that is closed when the Canceler fires. The
// channel is allocated lazily on first call.
func (c *Canceler) Done() <-chan struct{} {
	c.mu.Lock()
	if c.done == nil {
		c.done = make(chan struct{})
		if c.fired {
			close(c.done)
		}
	}
	d := c.done
	c.mu.Unlock()
	return d
}
