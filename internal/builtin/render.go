package builtin

import (
	"context"

	"github.com/giantswarm/cmdtree/internal/formatting"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// treeHandler dumps the catalog of the registry it runs in.
type treeHandler struct {
	color bool
}

func (h treeHandler) Execute(_ context.Context, data cmdtree.ExecutionData) error {
	name, err := cmdtree.ToChoice(data.GetOr("format", string(formatting.FormatTable)), formatting.FormatNames())
	if err != nil {
		return err
	}
	out, err := formatting.New(formatting.Options{Format: formatting.OutputFormat(name), Color: h.color}).FormatCatalog(data.Registry.Catalog())
	if err != nil {
		return err
	}
	data.Caller.Print(out)
	return nil
}

// Complete offers the output formats.
func (treeHandler) Complete(_ context.Context, data cmdtree.CompletionData) []string {
	return cmdtree.CandidatesWithPrefix(data, formatting.FormatNames())
}
