package tether

import (
	"context"
	"time"
)

type stdCtx struct {
	ctx Context
}

// Std adapts ctx to the standard library's context.Context interface,
// for handing a tether chain to code that expects the stdlib contract.
// Deadline reads the chain's pending deadline, Done is the nearest
// Canceler's channel (nil when the chain is not cancelable), Err the
// captured cause, and Value the chain lookup.
func Std(ctx Context) context.Context {
	if ctx == nil {
		ctx = Background()
	}
	return &stdCtx{ctx: ctx}
}

func (s *stdCtx) Deadline() (time.Time, bool) { return Deadline(s.ctx) }

func (s *stdCtx) Done() <-chan struct{} {
	if c := s.ctx.Canceler(); c != nil {
		return c.Done()
	}
	return nil
}

func (s *stdCtx) Err() error { return s.ctx.Err() }

func (s *stdCtx) Value(key interface{}) interface{} { return s.ctx.Value(key) }

func (s *stdCtx) String() string { return s.ctx.String() + ".Std" }
