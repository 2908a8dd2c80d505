package cmdtree

import (
	"context"
	"fmt"
)

// Caller identifies whoever issued a command line and receives the
// messages produced for them.
type Caller interface {
	Name() string
	Print(message string)
}

// CompletionSource produces candidates for the value of one parameter.
// Results are returned to the caller verbatim, so a source should filter
// by data.Current itself; CandidatesWithPrefix does that.
type CompletionSource interface {
	Complete(ctx context.Context, data CompletionData) []string
}

// CompletionFunc adapts a function to CompletionSource.
type CompletionFunc func(ctx context.Context, data CompletionData) []string

func (f CompletionFunc) Complete(ctx context.Context, data CompletionData) []string {
	return f(ctx, data)
}

// Handler executes a command and completes the parameters that do not
// name a completion source.
//
// Execute reports user-facing failures with an *ExecutionError. Any other
// error is a programming error and is returned from Registry.Dispatch.
type Handler interface {
	Execute(ctx context.Context, data ExecutionData) error
	CompletionSource
}

// HandlerFunc adapts a function to Handler. It completes nothing.
type HandlerFunc func(ctx context.Context, data ExecutionData) error

func (f HandlerFunc) Execute(ctx context.Context, data ExecutionData) error {
	return f(ctx, data)
}

func (f HandlerFunc) Complete(context.Context, CompletionData) []string {
	return []string{}
}

type handlerPair struct {
	exec     HandlerFunc
	complete CompletionFunc
}

func (h handlerPair) Execute(ctx context.Context, data ExecutionData) error {
	return h.exec(ctx, data)
}

func (h handlerPair) Complete(ctx context.Context, data CompletionData) []string {
	if h.complete == nil {
		return []string{}
	}
	return h.complete(ctx, data)
}

// NewHandler combines an execute function and a completion function.
// complete may be nil.
func NewHandler(exec HandlerFunc, complete CompletionFunc) Handler {
	return handlerPair{exec: exec, complete: complete}
}

// ExecutionData is what a handler receives when its command is dispatched.
type ExecutionData struct {
	Registry *Registry
	Caller   Caller
	Command  CommandNode
	Args     Args
}

// Get returns the value bound to the named parameter.
func (d ExecutionData) Get(name string) (string, bool) {
	return d.Args.Get(name)
}

// GetOr returns the value bound to name or fallback.
func (d ExecutionData) GetOr(name, fallback string) string {
	return d.Args.GetOr(name, fallback)
}

// MustGet returns the value bound to name and panics when there is none.
// Use it only for required parameters, which are always bound.
func (d ExecutionData) MustGet(name string) string {
	v, ok := d.Args[name]
	if !ok {
		panic(fmt.Sprintf("cmdtree: no value bound to parameter %q of %q", name, d.Command.String()))
	}
	return v
}

// Int converts the value bound to name. A missing or malformed value is an
// ExecutionError.
func (d ExecutionData) Int(name string) (int, error) {
	return ToInt(d.GetOr(name, ""))
}

// Float converts the value bound to name. A missing or malformed value is
// an ExecutionError.
func (d ExecutionData) Float(name string) (float64, error) {
	return ToFloat(d.GetOr(name, ""))
}

// CompletionData is what a completion source receives.
type CompletionData struct {
	Caller  Caller
	Command CommandNode
	// Parameter is the name of the parameter being completed.
	Parameter string
	// Current is the partial value typed so far, possibly empty.
	Current string
}

// Position tells Complete whether the last token is still being typed.
type Position int

const (
	// PositionCurrent means the last token is the partial text to complete.
	PositionCurrent Position = iota
	// PositionNext means the cursor sits after a separator and a new token
	// starts empty.
	PositionNext
)

func (p Position) String() string {
	if p == PositionNext {
		return "next"
	}
	return "current"
}
