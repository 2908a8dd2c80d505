package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dispatch outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeShortfall = "shortfall"
	OutcomeFailed    = "failed"
	OutcomeError     = "error"
)

// Completion kinds.
const (
	KindBranch    = "branch"
	KindParameter = "parameter"
	KindNone      = "none"
)

const shutdownTimeout = 5 * time.Second

// Collector counts dispatches and completions on an isolated registry.
type Collector struct {
	registry    *prometheus.Registry
	dispatches  *prometheus.CounterVec
	completions *prometheus.CounterVec
}

// New creates a collector with every label value pre-initialised to zero.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cmdtree_dispatch_total",
			Help: "Command dispatches by outcome.",
		}, []string{"outcome"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cmdtree_completions_total",
			Help: "Completion requests by what was completed.",
		}, []string{"kind"}),
	}
	c.registry.MustRegister(c.dispatches, c.completions)

	for _, o := range []string{OutcomeOK, OutcomeNotFound, OutcomeShortfall, OutcomeFailed, OutcomeError} {
		c.dispatches.WithLabelValues(o)
	}
	for _, k := range []string{KindBranch, KindParameter, KindNone} {
		c.completions.WithLabelValues(k)
	}
	return c
}

// Registry returns the prometheus registry the collector writes to.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

type outcomeKey struct{}

// recordOutcome stores the outcome on the dispatch in flight, or counts it
// directly when the error handler is used outside an instrumented dispatch.
func (c *Collector) recordOutcome(ctx context.Context, outcome string) {
	if slot, ok := ctx.Value(outcomeKey{}).(*string); ok {
		*slot = outcome
		return
	}
	c.dispatches.WithLabelValues(outcome).Inc()
}

// InstrumentErrorHandler wraps next so every error it handles is counted.
// Registries whose dispatches are counted must use the wrapped handler.
func (c *Collector) InstrumentErrorHandler(next cmdtree.ErrorHandler) cmdtree.ErrorHandler {
	return &instrumentedErrors{collector: c, next: next}
}

type instrumentedErrors struct {
	collector *Collector
	next      cmdtree.ErrorHandler
}

func (h *instrumentedErrors) OnCommandNotFound(ctx context.Context, r *cmdtree.Registry, caller cmdtree.Caller, branch cmdtree.Branch) {
	h.collector.recordOutcome(ctx, OutcomeNotFound)
	h.next.OnCommandNotFound(ctx, r, caller, branch)
}

func (h *instrumentedErrors) OnArgumentShortfall(ctx context.Context, r *cmdtree.Registry, caller cmdtree.Caller, cmd *cmdtree.Command) {
	h.collector.recordOutcome(ctx, OutcomeShortfall)
	h.next.OnArgumentShortfall(ctx, r, caller, cmd)
}

func (h *instrumentedErrors) OnExecutionFailed(ctx context.Context, r *cmdtree.Registry, caller cmdtree.Caller, err *cmdtree.ExecutionError) {
	h.collector.recordOutcome(ctx, OutcomeFailed)
	h.next.OnExecutionFailed(ctx, r, caller, err)
}

// Instrument wraps a dispatcher so its dispatches and completions are
// counted. Recovered failures are only told apart from successful runs when
// the registry behind d was built with InstrumentErrorHandler. Completions
// are classified when d exposes its tree, as a *cmdtree.Registry does.
func (c *Collector) Instrument(d cmdtree.Dispatcher) cmdtree.Dispatcher {
	return &instrumentedDispatcher{collector: c, next: d}
}

type treeProvider interface {
	Tree() *cmdtree.Tree
}

type instrumentedDispatcher struct {
	collector *Collector
	next      cmdtree.Dispatcher
}

func (d *instrumentedDispatcher) Dispatch(ctx context.Context, caller cmdtree.Caller, tokens []string) error {
	outcome := OutcomeOK
	err := d.next.Dispatch(context.WithValue(ctx, outcomeKey{}, &outcome), caller, tokens)
	if err != nil {
		outcome = OutcomeError
	}
	d.collector.dispatches.WithLabelValues(outcome).Inc()
	return err
}

func (d *instrumentedDispatcher) Complete(ctx context.Context, caller cmdtree.Caller, pos cmdtree.Position, tokens []string) []string {
	kind := KindNone
	if tp, ok := d.next.(treeProvider); ok {
		kind = completionKind(tp.Tree(), pos, tokens)
	}
	d.collector.completions.WithLabelValues(kind).Inc()
	return d.next.Complete(ctx, caller, pos, tokens)
}

// completionKind classifies a completion request the same way Complete
// walks it.
func completionKind(tree *cmdtree.Tree, pos cmdtree.Position, tokens []string) string {
	walked := tokens
	if pos == cmdtree.PositionCurrent && len(tokens) > 0 {
		walked = slices.Clone(tokens[:len(tokens)-1])
	}

	walk := tree.Walk(walked)
	node, ok := walk.Command()
	switch {
	case !ok && len(walk.Leftover()) == 0:
		return KindBranch
	case ok && node.Command().Parameters().Len() > 0:
		return KindParameter
	default:
		return KindNone
	}
}

// Serve exposes /metrics on ln until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", c.Handler())
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Metrics", "Serving metrics on http://%s/metrics", ln.Addr())
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return nil
}

// ListenAndServe listens on addr and serves metrics until ctx is cancelled.
func (c *Collector) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen for metrics on %s: %w", addr, err)
	}
	return c.Serve(ctx, ln)
}
