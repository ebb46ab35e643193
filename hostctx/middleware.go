package hostctx

import (
	"context"
	"net/http"

	"euphoria.io/tether"
)

// Middleware wraps next so every request runs with a cancelable child
// of root attached to it. The child is canceled, and the attachment
// removed, when the handler returns; if the client disconnects first,
// the child is canceled immediately so in-flight work can stop.
// Handlers retrieve the context with FromRequest.
func Middleware(root tether.Context, next http.Handler) http.Handler {
	if root == nil {
		root = tether.Background()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := tether.WithCancel(root)
		Attach(r, ctx)
		stop := context.AfterFunc(r.Context(), cancel)
		defer func() {
			stop()
			cancel()
			Detach(r)
		}()
		next.ServeHTTP(w, r)
	})
}

// FromRequest returns the context attached to r by Middleware, or
// Background if the request did not pass through it.
func FromRequest(r *http.Request) tether.Context {
	if ctx, ok := Get(r); ok {
		return ctx
	}
	return tether.Background()
}
