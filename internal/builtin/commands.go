package builtin

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/giantswarm/cmdtree/internal/console"
	"github.com/giantswarm/cmdtree/internal/formatting"
	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"

	"github.com/briandowns/spinner"
)

func say(_ context.Context, data cmdtree.ExecutionData) error {
	data.Caller.Print(fmt.Sprintf("%s: %s", data.Caller.Name(), data.MustGet("message")))
	return nil
}

func exit(context.Context, cmdtree.ExecutionData) error {
	return console.ErrExit
}

func calcHandler(op func(a, b int) int) cmdtree.Handler {
	return cmdtree.HandlerFunc(func(_ context.Context, data cmdtree.ExecutionData) error {
		a, err := data.Int("a")
		if err != nil {
			return err
		}
		b, err := data.Int("b")
		if err != nil {
			return err
		}
		data.Caller.Print(strconv.Itoa(op(a, b)))
		return nil
	})
}

func contextUse(contexts []string) cmdtree.Handler {
	return cmdtree.HandlerFunc(func(_ context.Context, data cmdtree.ExecutionData) error {
		holder, ok := data.Caller.(ContextHolder)
		if !ok {
			return cmdtree.Fail("This caller cannot switch contexts")
		}
		name, err := cmdtree.ToChoice(data.MustGet("name"), contexts)
		if err != nil {
			return err
		}
		holder.SetContext(name)
		data.Caller.Print(fmt.Sprintf("Switched to context '%s'", name))
		return nil
	})
}

func contextShow(_ context.Context, data cmdtree.ExecutionData) error {
	holder, ok := data.Caller.(ContextHolder)
	if !ok || holder.Context() == "" {
		data.Caller.Print("No context selected")
		return nil
	}
	data.Caller.Print(fmt.Sprintf("Current context: %s", holder.Context()))
	return nil
}

type msgHandler struct {
	roster *roster.Roster
}

func (h msgHandler) Execute(_ context.Context, data cmdtree.ExecutionData) error {
	user, ok := h.roster.Lookup(data.MustGet("user"))
	if !ok {
		return cmdtree.Failf("No user named '%s' exists", data.MustGet("user"))
	}
	logging.Debug("Builtin", "Message from %s to %s", data.Caller.Name(), user.Name)
	data.Caller.Print(fmt.Sprintf("[%s -> %s] %s", data.Caller.Name(), user.Name, data.MustGet("message")))
	return nil
}

func (h msgHandler) Complete(context.Context, cmdtree.CompletionData) []string {
	return []string{}
}

type rosterList struct {
	roster *roster.Roster
	color  bool
}

func (h rosterList) Execute(_ context.Context, data cmdtree.ExecutionData) error {
	users := h.roster.Users()
	if len(users) == 0 {
		data.Caller.Print(fmt.Sprintf("No users in roster %s", h.roster.Path()))
		return nil
	}

	out, err := formatting.New(formatting.Options{Format: formatting.FormatTable, Color: h.color}).FormatUsers(users)
	if err != nil {
		return err
	}
	data.Caller.Print(out)
	return nil
}

func (h rosterList) Complete(context.Context, cmdtree.CompletionData) []string {
	return []string{}
}

type rosterReload struct {
	roster  *roster.Roster
	spinner io.Writer
}

func (h rosterReload) Execute(ctx context.Context, data cmdtree.ExecutionData) error {
	if h.spinner != nil {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(h.spinner))
		s.Suffix = " Reloading roster..."
		s.Start()
		defer s.Stop()
	}

	n, err := h.roster.Reload(ctx)
	if err != nil {
		return &cmdtree.ExecutionError{Message: "Roster reload failed", Err: err}
	}
	data.Caller.Print(fmt.Sprintf("Loaded %d users", n))
	return nil
}

func (h rosterReload) Complete(context.Context, cmdtree.CompletionData) []string {
	return []string{}
}

// helpHandler shows the catalog, or the details of the command named by
// its argument.
type helpHandler struct {
	registry *cmdtree.Registry
	color    bool
}

func (h helpHandler) Execute(_ context.Context, data cmdtree.ExecutionData) error {
	target, ok := data.Get("command")
	if !ok {
		out, err := formatting.New(formatting.Options{Format: formatting.FormatTable, Color: h.color}).FormatCatalog(data.Registry.Catalog())
		if err != nil {
			return err
		}
		data.Caller.Print(out)
		return nil
	}

	walk := data.Registry.Tree().Walk(strings.Fields(target))
	node, found := walk.Command()
	if !found || len(walk.Leftover()) > 0 {
		return cmdtree.Failf("Unknown command: %s. Use 'help' to see all available commands.", target)
	}

	cmd := node.Command()
	data.Caller.Print("Command: " + cmd.Path())
	if cmd.Description() != "" {
		data.Caller.Print("Description: " + cmd.Description())
	}
	data.Caller.Print("Usage: " + cmd.Usage())
	for _, entry := range data.Registry.Catalog() {
		if entry.Path == cmd.Path() && len(entry.Aliases) > 0 {
			data.Caller.Print("Aliases: " + strings.Join(entry.Aliases, ", "))
		}
	}
	return nil
}

// Complete offers top-level names for the first word of the argument.
func (h helpHandler) Complete(_ context.Context, data cmdtree.CompletionData) []string {
	return cmdtree.CandidatesWithPrefix(data, h.registry.Root().ChildNames(false))
}
