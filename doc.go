/*
Package tether provides immutable context values and cascading, one-shot
cancellation for request-scoped work.

A context is a node in an immutable linked chain. It carries key/value
data down a call stack without explicit parameter threading, and it
carries a cancellation signal that fans out to every interested listener
exactly once.

# Values

Contexts never mutate. "Adding" a value builds a new node whose parent is
the old context:

	ctx := tether.New("request")
	ctx = tether.WithValue(ctx, userKey, "alice")

Lookup walks from the newest node back to the root and returns the first
match, so values written nearer the leaf shadow values written nearer the
root. Absence is distinct from a stored nil:

	val, ok := ctx.ValueOK(userKey)

Keys are compared by interface equality. To keep lookups collision-free,
define an unexported key type per package:

	type ctxKey int
	const userKey ctxKey = iota

# Cancellation

WithCancel derives a context that owns a Canceler, a one-shot event
source. Firing it delivers the cancellation cause to every registered
callback, synchronously and in registration order. Cancellation cascades:
firing a parent fires all of its live descendants before the parent's
cancel function returns. Canceling a child never affects its parent or
siblings, and detaches the child's listener from the parent so listener
sets stay bounded.

	ctx, cancel := tether.WithCancel(parent)
	defer cancel()

	if c := ctx.Canceler(); c != nil {
		c.Register(func(cause error) { conn.Close() })
	}

# Deadlines

WithDeadline and WithTimeout arm a timer that fires the derived context
with a deadline error when time runs out. A deadline later than one
already pending on an ancestor is redundant and degrades to a plain
WithCancel. The cause always records what actually happened: a timer
expiry satisfies IsDeadline, a direct or cascaded cancellation does not,
even on a context built by WithDeadline.

	ctx, cancel := tether.WithTimeout(parent, 5*time.Second)
	defer cancel()

# Causes

Every firing captures exactly one cause. IsCanceled and IsDeadline
classify any error, walking wrapped chains, so heterogeneous failure
sources unify under a single stop-detection predicate. AsCanceled and
AsDeadline decorate foreign errors to satisfy the predicates without
losing the original value.
*/
package tether
