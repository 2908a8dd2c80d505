package cmd

import (
	"errors"
	"strings"

	"github.com/giantswarm/cmdtree/internal/console"

	"github.com/spf13/cobra"
)

// execCmd runs a single command line.
var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single command line",
	Long: `Runs one command line as the console would and exits.

The arguments are joined with spaces, so quoting is only needed to keep the
shell from interpreting characters.

Examples:
  cmdtree exec calc add 2 3
  cmdtree exec msg alice "see you at 5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, false)
	if err != nil {
		return err
	}

	err = application.Exec(cmd.Context(), strings.Join(args, " "), cmd.OutOrStdout())
	if errors.Is(err, console.ErrExit) {
		return nil
	}
	return err
}
