// Package bind declares typed getter/setter pairs over tether context
// keys. A Key[T] is pure sugar over WithValue and ValueOK: it adds no
// invariants, only compile-time typing for one key, so packages can
// expose scoped accessors without hand-writing the assertion dance.
package bind

import "euphoria.io/tether"

// A Key associates a value of type T with a context chain. Each Key is
// its own identity; two Keys never collide, even with the same name.
// The name is diagnostic only.
type Key[T any] struct {
	name string
}

// NewKey returns a fresh key for values of type T.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// Name returns the diagnostic name given at construction.
func (k *Key[T]) Name() string { return k.name }

// Set derives a context storing v under k. The parent is not modified.
func (k *Key[T]) Set(ctx tether.Context, v T) tether.Context {
	return tether.WithValue(ctx, k, v)
}

// Get returns the value stored under k and whether the chain stores
// one. A stored zero value reports true.
func (k *Key[T]) Get(ctx tether.Context) (T, bool) {
	v, ok := ctx.ValueOK(k)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Must returns the value stored under k, panicking if the chain stores
// none. Use at boundaries where absence is a programming error.
func (k *Key[T]) Must(ctx tether.Context) T {
	v, ok := k.Get(ctx)
	if !ok {
		panic("bind: no value for key " + k.name)
	}
	return v
}

// Setter adapts k to the tether.Setter shape for callers that thread
// (setter, item) pairs. The item must be a T.
func (k *Key[T]) Setter() tether.Setter {
	return func(ctx tether.Context, item interface{}) tether.Context {
		return k.Set(ctx, item.(T))
	}
}
