// Package wsctx ties tether contexts to websocket connection lifetimes.
// A session's context should stop its work when the peer goes away, and
// the connection should close when the surrounding scope is canceled;
// Scoped wires both directions.
package wsctx

import (
	"time"

	"github.com/gorilla/websocket"

	"euphoria.io/tether"
)

const closeGracePeriod = time.Second

// Scoped derives a cancelable child of parent bound to conn. When the
// child's canceler fires, for any reason, the peer is sent a close
// frame and the connection is closed. When the peer sends a close
// frame, the child is canceled. The returned CancelFunc cancels the
// child directly, which closes the connection too.
//
// The close-frame direction only triggers while reads are being pumped,
// since gorilla invokes close handlers from NextReader. Callers that
// stop reading must call the CancelFunc themselves.
func Scoped(parent tether.Context, conn *websocket.Conn) (tether.Context, tether.CancelFunc) {
	ctx, cancel := tether.WithCancel(parent)

	c := ctx.Canceler()
	c.Register(func(cause error) {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, cause.Error())
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		conn.Close()
	})

	prev := conn.CloseHandler()
	conn.SetCloseHandler(func(code int, text string) error {
		cancel()
		return prev(code, text)
	})

	return ctx, cancel
}
