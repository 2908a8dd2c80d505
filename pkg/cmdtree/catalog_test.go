package cmdtree

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsBreadthFirst(t *testing.T) {
	r := mustRegistry(t, "b deep inner", "a two", "a one <x>", "c", "b top")
	require.NoError(t, r.AddAlias("a uno", "a one"))

	var paths []string
	for _, node := range r.Commands() {
		paths = append(paths, node.Command().Path())
	}

	want := []string{"c", "a one", "a two", "b top", "b deep inner"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("command order mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("calc add <a> <b>", noop(), "Add two integers"))
	require.NoError(t, r.Register("msg <user:users> [message]", noop(), ""))
	require.NoError(t, r.AddAlias("calc plus", "calc add"))
	require.NoError(t, r.AddAlias("sum", "calc add"))
	require.NoError(t, r.AddAlias("broken", "nowhere"))

	want := []CatalogEntry{
		{
			Path:       "msg",
			Usage:      "msg <user> [message]",
			Parameters: []ParameterInfo{{Name: "user", Required: true, Source: "users"}, {Name: "message"}},
		},
		{
			Path:        "calc add",
			Usage:       "calc add <a> <b>",
			Description: "Add two integers",
			Parameters:  []ParameterInfo{{Name: "a", Required: true}, {Name: "b", Required: true}},
			Aliases:     []string{"sum", "calc plus"},
		},
	}

	if diff := cmp.Diff(want, r.Catalog()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpHandler(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("help", HelpHandler{Header: "Commands:", Footer: "--"}, "Show this list"))
	require.NoError(t, r.Register("say <message>", noop(), ""))

	caller := &recordingCaller{}
	require.NoError(t, r.Dispatch(context.Background(), caller, []string{"help"}))

	assert.Equal(t, []string{
		"Commands:",
		"help",
		"  - Show this list",
		"say <message>",
		"--",
	}, caller.lines)
	assert.Empty(t, HelpHandler{}.Complete(context.Background(), CompletionData{}))
}
