package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giantswarm/cmdtree/pkg/cmdtree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type bufferCaller struct {
	lines []string
}

func (c *bufferCaller) Name() string { return "tester" }

func (c *bufferCaller) Print(message string) { c.lines = append(c.lines, message) }

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func newInstrumentedRegistry(t *testing.T, c *Collector) *cmdtree.Registry {
	t.Helper()
	r := cmdtree.NewRegistry(cmdtree.WithErrorHandler(c.InstrumentErrorHandler(cmdtree.DefaultErrorHandler{})))
	noop := cmdtree.HandlerFunc(func(context.Context, cmdtree.ExecutionData) error { return nil })
	require.NoError(t, r.Register("calc add <a> <b>", noop, ""))
	require.NoError(t, r.Register("boom", cmdtree.HandlerFunc(func(context.Context, cmdtree.ExecutionData) error {
		return cmdtree.Fail("boom")
	}), ""))
	require.NoError(t, r.Register("crash", cmdtree.HandlerFunc(func(context.Context, cmdtree.ExecutionData) error {
		return errors.New("crash")
	}), ""))
	require.NoError(t, r.Register("help", noop, ""))
	return r
}

func TestNewPreinitialisesLabels(t *testing.T) {
	body := scrape(t, New())

	for _, o := range []string{OutcomeOK, OutcomeNotFound, OutcomeShortfall, OutcomeFailed, OutcomeError} {
		assert.Contains(t, body, fmt.Sprintf(`cmdtree_dispatch_total{outcome=%q} 0`, o))
	}
	for _, k := range []string{KindBranch, KindParameter, KindNone} {
		assert.Contains(t, body, fmt.Sprintf(`cmdtree_completions_total{kind=%q} 0`, k))
	}
}

func TestInstrumentCountsDispatchOutcomes(t *testing.T) {
	c := New()
	d := c.Instrument(newInstrumentedRegistry(t, c))
	ctx := context.Background()
	caller := &bufferCaller{}

	require.NoError(t, d.Dispatch(ctx, caller, []string{"calc", "add", "1", "2"}))
	require.NoError(t, d.Dispatch(ctx, caller, []string{"help"}))
	require.NoError(t, d.Dispatch(ctx, caller, []string{"nope"}))
	require.NoError(t, d.Dispatch(ctx, caller, []string{"calc", "add", "1"}))
	require.NoError(t, d.Dispatch(ctx, caller, []string{"boom"}))
	require.Error(t, d.Dispatch(ctx, caller, []string{"crash"}))

	body := scrape(t, c)
	assert.Contains(t, body, `cmdtree_dispatch_total{outcome="ok"} 2`)
	assert.Contains(t, body, `cmdtree_dispatch_total{outcome="not_found"} 1`)
	assert.Contains(t, body, `cmdtree_dispatch_total{outcome="shortfall"} 1`)
	assert.Contains(t, body, `cmdtree_dispatch_total{outcome="failed"} 1`)
	assert.Contains(t, body, `cmdtree_dispatch_total{outcome="error"} 1`)

	assert.Equal(t, []string{"Candidates: boom, calc, crash, help", "Usage: calc add <a> <b>", "boom"}, caller.lines)
}

func TestErrorHandlerOutsideInstrumentedDispatch(t *testing.T) {
	c := New()
	r := newInstrumentedRegistry(t, c)

	require.NoError(t, r.Dispatch(context.Background(), &bufferCaller{}, []string{"nope"}))

	assert.Contains(t, scrape(t, c), `cmdtree_dispatch_total{outcome="not_found"} 1`)
}

func TestInstrumentCountsCompletionKinds(t *testing.T) {
	c := New()
	d := c.Instrument(newInstrumentedRegistry(t, c))
	ctx := context.Background()
	caller := &bufferCaller{}

	assert.Equal(t, []string{"calc", "crash"}, d.Complete(ctx, caller, cmdtree.PositionCurrent, []string{"c"}))
	assert.Equal(t, []string{"add"}, d.Complete(ctx, caller, cmdtree.PositionNext, []string{"calc"}))
	assert.Empty(t, d.Complete(ctx, caller, cmdtree.PositionNext, []string{"calc", "add"}))
	assert.Empty(t, d.Complete(ctx, caller, cmdtree.PositionNext, []string{"help"}))
	assert.Empty(t, d.Complete(ctx, caller, cmdtree.PositionNext, []string{"zzz"}))

	body := scrape(t, c)
	assert.Contains(t, body, `cmdtree_completions_total{kind="branch"} 2`)
	assert.Contains(t, body, `cmdtree_completions_total{kind="parameter"} 1`)
	assert.Contains(t, body, `cmdtree_completions_total{kind="none"} 2`)
}

func TestServe(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := New()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	client.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "cmdtree_dispatch_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestListenAndServeBadAddress(t *testing.T) {
	err := New().ListenAndServe(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen for metrics")
}
