package cmdtree

import (
	"context"
	"strings"
)

// ErrorHandler receives the failures Dispatch recovers from. Implementations
// typically tell the caller what went wrong.
type ErrorHandler interface {
	// OnCommandNotFound is called when the tokens did not reach a command.
	// branch is the deepest branch reached, the root if none.
	OnCommandNotFound(ctx context.Context, r *Registry, caller Caller, branch Branch)
	// OnArgumentShortfall is called when a required parameter got no value.
	OnArgumentShortfall(ctx context.Context, r *Registry, caller Caller, cmd *Command)
	// OnExecutionFailed is called when a handler returned an ExecutionError.
	OnExecutionFailed(ctx context.Context, r *Registry, caller Caller, err *ExecutionError)
}

// ErrorHandlerFuncs builds an ErrorHandler from individual callbacks. A nil
// callback defers to Fallback, and does nothing when Fallback is nil too.
type ErrorHandlerFuncs struct {
	CommandNotFound   func(ctx context.Context, caller Caller, branch Branch)
	ArgumentShortfall func(ctx context.Context, caller Caller, cmd *Command)
	ExecutionFailed   func(ctx context.Context, caller Caller, err *ExecutionError)
	Fallback          ErrorHandler
}

func (h ErrorHandlerFuncs) OnCommandNotFound(ctx context.Context, r *Registry, caller Caller, branch Branch) {
	switch {
	case h.CommandNotFound != nil:
		h.CommandNotFound(ctx, caller, branch)
	case h.Fallback != nil:
		h.Fallback.OnCommandNotFound(ctx, r, caller, branch)
	}
}

func (h ErrorHandlerFuncs) OnArgumentShortfall(ctx context.Context, r *Registry, caller Caller, cmd *Command) {
	switch {
	case h.ArgumentShortfall != nil:
		h.ArgumentShortfall(ctx, caller, cmd)
	case h.Fallback != nil:
		h.Fallback.OnArgumentShortfall(ctx, r, caller, cmd)
	}
}

func (h ErrorHandlerFuncs) OnExecutionFailed(ctx context.Context, r *Registry, caller Caller, err *ExecutionError) {
	switch {
	case h.ExecutionFailed != nil:
		h.ExecutionFailed(ctx, caller, err)
	case h.Fallback != nil:
		h.Fallback.OnExecutionFailed(ctx, r, caller, err)
	}
}

// DefaultErrorHandler prints plain messages to the caller, each starting
// with Prefix.
type DefaultErrorHandler struct {
	Prefix string
}

// OnCommandNotFound prints "Candidates: a, b" listing the children of branch.
func (h DefaultErrorHandler) OnCommandNotFound(_ context.Context, _ *Registry, caller Caller, branch Branch) {
	caller.Print(h.Prefix + "Candidates: " + strings.Join(branch.ChildNames(true), ", "))
}

// OnArgumentShortfall prints "Usage: <path> <params>".
func (h DefaultErrorHandler) OnArgumentShortfall(_ context.Context, _ *Registry, caller Caller, cmd *Command) {
	caller.Print(h.Prefix + "Usage: " + cmd.Usage())
}

// OnExecutionFailed prints the failure message, unless it is empty.
func (h DefaultErrorHandler) OnExecutionFailed(_ context.Context, _ *Registry, caller Caller, err *ExecutionError) {
	if err.Message == "" {
		return
	}
	caller.Print(h.Prefix + err.Message)
}
