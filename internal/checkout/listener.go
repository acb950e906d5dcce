package checkout

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sultanm/shopfront/pkg/config"
	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/logger"
)

const (
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Callback is the outcome reported by the payment redirect.
type Callback struct {
	SessionID string
	Status    string
}

// Listener is a short-lived local HTTP server that receives the
// payment provider's success/cancel redirect. It also exposes the
// process metrics while it is up, since it is the only listening
// surface this client has.
type Listener struct {
	srv     *http.Server
	ln      net.Listener
	result  chan Callback
	timeout time.Duration
	logg    *logger.Logger
}

// NewListener binds the callback address immediately so the bound
// address can be embedded in redirect URLs before waiting starts.
func NewListener(cfg config.CheckoutConfig, gatherer prometheus.Gatherer, logg *logger.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", cfg.CallbackAddr)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bind payment callback listener")
	}

	l := &Listener{
		ln:      ln,
		result:  make(chan Callback, 1),
		timeout: cfg.WaitTimeout,
		logg:    logg,
	}

	r := chi.NewRouter()
	r.Get("/payment-success", l.handle(StatusPaid, "Payment received. You can close this tab."))
	r.Get("/payment-cancel", l.handle(StatusCancelled, "Payment cancelled. You can close this tab."))
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	l.srv = &http.Server{Handler: r}
	go func() {
		if err := l.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			if logg != nil {
				logg.Error(context.Background(), "payment callback listener stopped", err)
			}
		}
	}()
	return l, nil
}

// Addr is the bound listen address, host:port.
func (l *Listener) Addr() string {
	return l.ln.Addr().String()
}

// Wait blocks until the redirect lands, the configured timeout lapses,
// or ctx is cancelled.
func (l *Listener) Wait(ctx context.Context) (*Callback, error) {
	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	select {
	case cb := <-l.result:
		return &cb, nil
	case <-timer.C:
		return nil, pkgerrors.New(pkgerrors.CodeBackend, "timed out waiting for the payment redirect")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close shuts the listener down. Safe to call after Wait returns.
func (l *Listener) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return l.srv.Shutdown(ctx)
}

func (l *Listener) handle(status, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		cb := Callback{
			SessionID: req.URL.Query().Get("session_id"),
			Status:    status,
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, body)

		// Only the first redirect counts; refreshes of the result
		// page are dropped.
		select {
		case l.result <- cb:
		default:
		}
	}
}
