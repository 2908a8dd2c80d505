package cmdtree

import (
	"context"
	"strings"
)

// Commands returns every command below b, breadth first, visiting children
// in name order. Aliases are skipped.
func (b Branch) Commands() []CommandNode {
	var commands []CommandNode
	queue := []Branch{b}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range current.Children() {
			switch child.Kind() {
			case BranchKind:
				br, _ := child.AsBranch()
				queue = append(queue, br)
			case CommandKind:
				cmd, _ := child.AsCommand()
				commands = append(commands, cmd)
			}
		}
	}
	return commands
}

// Aliases returns every alias below b in the same order as Commands.
func (b Branch) Aliases() []AliasNode {
	var aliases []AliasNode
	queue := []Branch{b}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range current.Children() {
			if br, ok := child.AsBranch(); ok {
				queue = append(queue, br)
			} else if alias, ok := child.AsAlias(); ok {
				aliases = append(aliases, alias)
			}
		}
	}
	return aliases
}

// Commands returns every registered command. See Branch.Commands.
func (r *Registry) Commands() []CommandNode {
	return r.tree.Root().Commands()
}

// CatalogEntry describes one command for listings and machine-readable dumps.
type CatalogEntry struct {
	Path        string          `json:"path"`
	Usage       string          `json:"usage"`
	Description string          `json:"description,omitempty"`
	Parameters  []ParameterInfo `json:"parameters,omitempty"`
	Aliases     []string        `json:"aliases,omitempty"`
}

// ParameterInfo is the serializable form of a Parameter.
type ParameterInfo struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Source   string `json:"source,omitempty"`
}

// Catalog describes every command in Commands order. Aliases resolving to
// a command are listed with it.
func (r *Registry) Catalog() []CatalogEntry {
	root := r.tree.Root()

	aliasesOf := map[Node][]string{}
	for _, alias := range root.Aliases() {
		if target, ok := alias.Resolve(); ok {
			aliasesOf[target] = append(aliasesOf[target], alias.String())
		}
	}

	commands := root.Commands()
	entries := make([]CatalogEntry, 0, len(commands))
	for _, node := range commands {
		cmd := node.Command()
		entry := CatalogEntry{
			Path:        cmd.Path(),
			Usage:       cmd.Usage(),
			Description: cmd.Description(),
			Aliases:     aliasesOf[node.Node],
		}
		for _, p := range cmd.Parameters().All() {
			entry.Parameters = append(entry.Parameters, ParameterInfo{Name: p.Name, Required: p.Required, Source: p.Source})
		}
		entries = append(entries, entry)
	}
	return entries
}

// HelpHandler prints every command of the registry it is dispatched from,
// one usage line each followed by an indented description line.
type HelpHandler struct {
	Header string
	Footer string
}

func (h HelpHandler) Execute(_ context.Context, data ExecutionData) error {
	if h.Header != "" {
		data.Caller.Print(h.Header)
	}
	for _, node := range data.Registry.Commands() {
		cmd := node.Command()
		data.Caller.Print(cmd.Usage())
		if desc := strings.TrimSpace(cmd.Description()); desc != "" {
			data.Caller.Print("  - " + desc)
		}
	}
	if h.Footer != "" {
		data.Caller.Print(h.Footer)
	}
	return nil
}

func (h HelpHandler) Complete(context.Context, CompletionData) []string {
	return []string{}
}
