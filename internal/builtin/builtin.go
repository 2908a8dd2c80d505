package builtin

import (
	"context"
	"io"

	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// Dependencies are the services the built-in commands work with.
type Dependencies struct {
	// Roster backs msg and the roster commands. Nil leaves them out.
	Roster *roster.Roster
	// Contexts are the choices of "context use".
	Contexts []string
	// SpinnerWriter, when set, shows a spinner there during slow commands.
	SpinnerWriter io.Writer
	// Color enables coloured tables.
	Color bool
}

// ContextHolder is implemented by callers that can switch contexts.
type ContextHolder interface {
	Context() string
	SetContext(name string)
}

// Register adds the built-in command set and its aliases to r.
func Register(r *cmdtree.Registry, deps Dependencies) error {
	entries := []cmdtree.Entry{
		{Line: "help [command]", Handler: helpHandler{registry: r, color: deps.Color}, Description: "Show available commands, or details of one command"},
		{Line: "commands", Handler: cmdtree.HelpHandler{Header: "Available commands:"}, Description: "List command usages"},
		{Line: "say <message>", Handler: cmdtree.HandlerFunc(say), Description: "Print a message"},
		{Line: "calc add <a> <b>", Handler: calcHandler(func(a, b int) int { return a + b }), Description: "Add two integers"},
		{Line: "calc mul <a> <b>", Handler: calcHandler(func(a, b int) int { return a * b }), Description: "Multiply two integers"},
		{Line: "context use <name:contexts>", Handler: contextUse(deps.Contexts), Description: "Switch the session context"},
		{Line: "context show", Handler: cmdtree.HandlerFunc(contextShow), Description: "Show the session context"},
		{Line: "tree [format]", Handler: treeHandler{color: deps.Color}, Description: "Dump the command catalog as a table, console list, yaml or json"},
		{Line: "exit", Handler: cmdtree.HandlerFunc(exit), Description: "Leave the console"},
	}
	if deps.Roster != nil {
		entries = append(entries,
			cmdtree.Entry{Line: "msg <user:users> <message>", Handler: msgHandler{roster: deps.Roster}, Description: "Send a message to a roster user"},
			cmdtree.Entry{Line: "roster list", Handler: rosterList{roster: deps.Roster, color: deps.Color}, Description: "List roster users"},
			cmdtree.Entry{Line: "roster reload", Handler: rosterReload{roster: deps.Roster, spinner: deps.SpinnerWriter}, Description: "Re-read the roster file"},
		)
	}
	if err := r.RegisterAll(entries); err != nil {
		return err
	}

	aliases := [][2]string{
		{"?", "help"},
		{"calc plus", "calc add"},
		{"context switch", "context use"},
	}
	for _, a := range aliases {
		if err := r.AddAlias(a[0], a[1]); err != nil {
			return err
		}
	}
	return nil
}

// Sources returns the completion sources the built-in commands refer to.
func Sources(deps Dependencies) map[string]cmdtree.CompletionSource {
	sources := map[string]cmdtree.CompletionSource{
		"contexts": cmdtree.CompletionFunc(func(_ context.Context, data cmdtree.CompletionData) []string {
			return cmdtree.CandidatesWithPrefix(data, deps.Contexts)
		}),
	}
	if deps.Roster != nil {
		sources["users"] = deps.Roster
	}
	return sources
}
