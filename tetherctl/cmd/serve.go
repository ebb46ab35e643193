package cmd

import (
	"flag"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"euphoria.io/tether"
	"euphoria.io/tether/hostctx"
	"euphoria.io/tether/instrument"
	"euphoria.io/tether/logging"
	"euphoria.io/tether/wsctx"
)

func init() { register("serve", &serveCmd{}) }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type serveCmd struct {
	addr       string
	maxSession time.Duration
}

func (serveCmd) desc() string { return "start up a demo websocket echo server" }

func (serveCmd) usage() string {
	return "serve [--http=<interface:port>] [--max-session=<duration>]"
}

func (serveCmd) longdesc() string {
	return `
	Start a websocket echo server demonstrating scoped cancellation.
	Each connection runs under its own context: closing the peer,
	exceeding the session deadline, or shutting the process down all
	cancel it, and the cause is reported in the close frame. Metrics
	are exported at /metrics.
`[1:]
}

func (cmd *serveCmd) flags() *flag.FlagSet {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	flags.StringVar(&cmd.addr, "http", ":8080", "address to serve http on")
	flags.DurationVar(&cmd.maxSession, "max-session", time.Hour, "session deadline")
	return flags
}

func (cmd *serveCmd) run(ctx tether.Context, args []string) error {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/echo", hostctx.Middleware(ctx, http.HandlerFunc(cmd.handleEcho)))

	srv := &http.Server{Addr: cmd.addr, Handler: r}
	if c := ctx.Canceler(); c != nil {
		c.Register(func(cause error) { srv.Close() })
	}

	logging.Logger(ctx).Printf("serving /echo and /metrics on %s", cmd.addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed || ctx.Canceled() {
		return nil
	}
	return err
}

func (cmd *serveCmd) handleEcho(w http.ResponseWriter, r *http.Request) {
	reqCtx := hostctx.FromRequest(r)
	logger := logging.Logger(reqCtx)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := instrument.WithTimeout(reqCtx, cmd.maxSession)
	ctx, _ = wsctx.Scoped(ctx, conn)
	defer cancel()

	logger.Printf("session start: %s", r.RemoteAddr)
	for !ctx.Canceled() {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if err := conn.WriteMessage(kind, data); err != nil {
			break
		}
	}
	logger.Printf("session end: %s (%v)", r.RemoteAddr, ctx.Err())
}
