package cmd

import (
	"fmt"

	"github.com/giantswarm/cmdtree/pkg/cmdtree"

	"github.com/spf13/cobra"
)

// completeNext completes the token after the arguments instead of the last
// argument.
var completeNext bool

// completeCmd prints completion candidates, one per line.
var completeCmd = &cobra.Command{
	Use:   "complete [tokens...]",
	Short: "Print completion candidates for a partial command line",
	Long: `Prints the candidates for completing a partial command line, one per line.

By default the last token is the one being typed. With --next a new token is
being started after the given ones.

Examples:
  cmdtree complete ca          # calc
  cmdtree complete --next calc # add, mul
  cmdtree complete msg al      # users starting with "al"`,
	RunE: runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, false)
	if err != nil {
		return err
	}

	pos := cmdtree.PositionCurrent
	if completeNext || len(args) == 0 {
		pos = cmdtree.PositionNext
	}
	for _, candidate := range application.CompleteTokens(cmd.Context(), pos, args) {
		fmt.Fprintln(cmd.OutOrStdout(), candidate)
	}
	return nil
}

func init() {
	completeCmd.Flags().BoolVar(&completeNext, "next", false, "Complete the token after the given ones")
}
