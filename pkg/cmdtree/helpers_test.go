package cmdtree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingCaller struct {
	name  string
	lines []string
}

func (c *recordingCaller) Name() string { return c.name }

func (c *recordingCaller) Print(message string) {
	c.lines = append(c.lines, message)
}

// recordingErrors captures every error handler callback.
type recordingErrors struct {
	notFound   []Branch
	shortfalls []*Command
	failures   []*ExecutionError
}

func (h *recordingErrors) OnCommandNotFound(_ context.Context, _ *Registry, _ Caller, branch Branch) {
	h.notFound = append(h.notFound, branch)
}

func (h *recordingErrors) OnArgumentShortfall(_ context.Context, _ *Registry, _ Caller, cmd *Command) {
	h.shortfalls = append(h.shortfalls, cmd)
}

func (h *recordingErrors) OnExecutionFailed(_ context.Context, _ *Registry, _ Caller, err *ExecutionError) {
	h.failures = append(h.failures, err)
}

// staticSource answers with fixed candidates and remembers its last request.
type staticSource struct {
	candidates []string
	last       *CompletionData
}

func (s *staticSource) Complete(_ context.Context, data CompletionData) []string {
	s.last = &data
	return s.candidates
}

// capture is a handler remembering the data of its last execution.
type capture struct {
	calls int
	data  ExecutionData
	err   error
	comp  []string
	asked *CompletionData
}

func (c *capture) Execute(_ context.Context, data ExecutionData) error {
	c.calls++
	c.data = data
	return c.err
}

func (c *capture) Complete(_ context.Context, data CompletionData) []string {
	c.asked = &data
	return c.comp
}

var errBoom = errors.New("boom")

func noop() Handler {
	return HandlerFunc(func(context.Context, ExecutionData) error { return nil })
}

func mustRegistry(t *testing.T, lines ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, line := range lines {
		require.NoError(t, r.Register(line, noop(), ""))
	}
	return r
}
