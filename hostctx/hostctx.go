// Package hostctx attaches tether contexts to arbitrary host objects,
// for process boundaries where a context cannot be threaded as a
// parameter. The canonical host is an incoming *http.Request: the
// Middleware in this package derives a cancelable context per request
// and cancels it when the request completes or the client goes away.
//
// The registry holds strong references. Every Attach must be paired
// with a Detach once the host's work resolves, or the entry leaks.
package hostctx

import (
	"reflect"
	"sync"

	"euphoria.io/tether"
)

var (
	mu   sync.RWMutex
	data = map[interface{}]tether.Context{}
)

// Attach associates ctx with host, replacing any prior association.
// The host must be non-nil and comparable (pointers are the usual
// choice); Attach panics otherwise.
func Attach(host interface{}, ctx tether.Context) {
	if host == nil {
		panic("hostctx: Attach called with nil host")
	}
	if !reflect.TypeOf(host).Comparable() {
		panic("hostctx: Attach called with non-comparable host")
	}
	if ctx == nil {
		ctx = tether.Background()
	}
	mu.Lock()
	data[host] = ctx
	mu.Unlock()
}

// Get returns the context attached to host and whether one is attached.
func Get(host interface{}) (tether.Context, bool) {
	mu.RLock()
	ctx, ok := data[host]
	mu.RUnlock()
	return ctx, ok
}

// Detach removes host's association. It is a no-op if none exists.
func Detach(host interface{}) {
	mu.Lock()
	delete(data, host)
	mu.Unlock()
}

// Len returns the number of live associations. Useful for verifying
// that boundaries detach what they attach.
func Len() int {
	mu.RLock()
	n := len(data)
	mu.RUnlock()
	return n
}
