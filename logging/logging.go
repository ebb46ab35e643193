// Package logging carries a *log.Logger through a tether context chain,
// so request-scoped code logs with the prefix of the boundary that
// admitted it.
package logging

import (
	"io"
	"log"
	"os"

	"euphoria.io/tether"
)

type logCtxKey int

const logCtx logCtxKey = 0
const logFlags = log.LstdFlags

// Logger returns the logger carried by ctx, or a default stdout logger
// with an unknown-origin prefix if the chain carries none.
func Logger(ctx tether.Context) *log.Logger {
	if logger, ok := ctx.Value(logCtx).(*log.Logger); ok {
		return logger
	}
	return log.New(os.Stdout, "[???] ", logFlags)
}

// LoggingContext derives a context carrying a logger that writes to w
// with the given prefix. The parent context is not modified.
func LoggingContext(ctx tether.Context, w io.Writer, prefix string) tether.Context {
	logger := log.New(w, prefix, logFlags)
	return tether.WithValue(ctx, logCtx, logger)
}

// SetLogger is the tether.Setter form of LoggingContext for callers
// that thread (setter, item) pairs. The item must be a *log.Logger.
func SetLogger(ctx tether.Context, item interface{}) tether.Context {
	return tether.WithValue(ctx, logCtx, item.(*log.Logger))
}
