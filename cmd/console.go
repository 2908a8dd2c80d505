package cmd

import (
	"github.com/spf13/cobra"
)

// consoleCmd starts the interactive console.
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start an interactive console",
	Long: `Starts an interactive console with command history and tab completion.

Type 'help' for the available commands and 'exit' or Ctrl+D to leave.
Ctrl+C clears the current line.

When metrics.address is configured, dispatch and completion counters are
served on http://<address>/metrics while the console runs. Changes to the
roster file are picked up automatically.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, true)
	if err != nil {
		return err
	}
	return application.RunConsole(cmd.Context())
}
