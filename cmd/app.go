package cmd

import (
	"github.com/giantswarm/cmdtree/internal/app"

	"github.com/spf13/cobra"
)

// newApplication bootstraps the application for cmd from the global flags.
func newApplication(cmd *cobra.Command, interactive bool) (*app.Application, error) {
	cfg := app.NewConfig(debug, quiet, interactive, resolvedConfigPath())
	return app.NewApplication(cmd.Context(), cfg)
}
