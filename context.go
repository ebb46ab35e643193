package tether

import (
	"fmt"
	"reflect"
)

// A Context is a node in an immutable chain of scoped values and
// cancellation signals. See the package documentation for the full
// lifecycle.
type Context interface {
	// Name returns the node's display label. It has no semantic effect
	// and exists only for diagnostics.
	Name() string

	// Value returns the value stored under key in this node or the
	// nearest ancestor, or nil if no node in the chain stores it. A
	// stored nil is indistinguishable from absence here; use ValueOK
	// to tell them apart.
	Value(key interface{}) interface{}

	// ValueOK returns the value stored under key and whether any node
	// in the chain stores it.
	ValueOK(key interface{}) (interface{}, bool)

	// Canceler returns the Canceler owned by this node or the nearest
	// ancestor, or nil if no node in the chain owns one.
	Canceler() *Canceler

	// Canceled reports whether the nearest Canceler has fired. A
	// context with no Canceler is never canceled.
	Canceled() bool

	// Err returns the cause the nearest Canceler fired with, or nil if
	// there is no Canceler or it has not fired.
	Err() error

	// String renders the chain of nodes for diagnostics.
	String() string
}

type baseCtx struct {
	name string
}

func (c *baseCtx) Name() string                                { return c.name }
func (c *baseCtx) Value(key interface{}) interface{}           { return nil }
func (c *baseCtx) ValueOK(key interface{}) (interface{}, bool) { return nil, false }
func (c *baseCtx) Canceler() *Canceler                         { return nil }
func (c *baseCtx) Canceled() bool                              { return false }
func (c *baseCtx) Err() error                                  { return nil }
func (c *baseCtx) String() string                              { return "tether." + c.name }

var background = &baseCtx{name: "Background"}

// Background returns the root context shared by code that has no more
// specific context to start from. It carries no values and cannot be
// canceled.
func Background() Context { return background }

// New returns an empty root context with the given display name. It
// carries no values and cannot be canceled.
func New(name string) Context { return &baseCtx{name: name} }

type valueCtx struct {
	parent Context
	key    interface{}
	val    interface{}
}

func (c *valueCtx) Name() string { return "Value" }

func (c *valueCtx) Value(key interface{}) interface{} {
	val, _ := c.ValueOK(key)
	return val
}

func (c *valueCtx) ValueOK(key interface{}) (interface{}, bool) {
	if c.key == key {
		return c.val, true
	}
	return c.parent.ValueOK(key)
}

func (c *valueCtx) Canceler() *Canceler { return c.parent.Canceler() }
func (c *valueCtx) Canceled() bool      { return c.parent.Canceled() }
func (c *valueCtx) Err() error          { return c.parent.Err() }

func (c *valueCtx) String() string {
	return fmt.Sprintf("%s.WithValue(%v)", c.parent, c.key)
}

// WithValue returns a new context storing val under key, with ctx as its
// parent. ctx is never modified. A nil ctx roots the chain at
// Background, so WithValue(nil, key, val) builds a standalone root
// carrying one value.
//
// The key must be non-nil and comparable; WithValue panics otherwise.
// A nil val is legal and is reported as present by ValueOK.
func WithValue(ctx Context, key, val interface{}) Context {
	if key == nil {
		panic("tether: WithValue called with nil key")
	}
	if !reflect.TypeOf(key).Comparable() {
		panic("tether: WithValue called with non-comparable key")
	}
	if ctx == nil {
		ctx = Background()
	}
	return &valueCtx{parent: ctx, key: key, val: val}
}

// A Setter stores one item in a context and returns the derived context.
// Setters let packages expose typed write access to their keys while the
// chaining machinery stays generic.
type Setter func(ctx Context, item interface{}) Context

// With applies setter to ctx and item, returning the derived context. It
// panics if setter is nil. This is the setter-form counterpart of
// WithValue for callers that are handed a (setter, item) pair rather
// than a (key, value) pair.
func With(ctx Context, setter Setter, item interface{}) Context {
	if setter == nil {
		panic("tether: With called with nil setter")
	}
	if ctx == nil {
		ctx = Background()
	}
	return setter(ctx, item)
}
