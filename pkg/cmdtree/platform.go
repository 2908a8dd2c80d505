package cmdtree

import "context"

// Dispatcher is the part of a Registry a host platform calls into.
type Dispatcher interface {
	Dispatch(ctx context.Context, caller Caller, tokens []string) error
	Complete(ctx context.Context, caller Caller, pos Position, tokens []string) []string
}

// Platform is the host environment a Registry plugs its top-level commands
// into.
type Platform interface {
	// RegisterHandler is called once per top-level name, the first time a
	// command or alias under it is registered. Returning an error, usually
	// a *CommandNotDeclaredError, aborts that registration.
	RegisterHandler(name string, d Dispatcher) error
	// DefaultCompleters seeds the registry's named completion sources.
	DefaultCompleters() map[string]CompletionSource
}
