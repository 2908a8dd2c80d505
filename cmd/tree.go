package cmd

import (
	"fmt"

	"github.com/giantswarm/cmdtree/internal/formatting"

	"github.com/spf13/cobra"
)

// treeOutput selects the catalog format.
var treeOutput string

// treeCmd prints the command catalog.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print every registered command",
	Long: `Prints every registered command in breadth-first order with its usage,
description, parameters and aliases.

Output formats: table (default), console, yaml, json.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	format, err := formatting.ParseFormat(treeOutput)
	if err != nil {
		return err
	}

	application, err := newApplication(cmd, false)
	if err != nil {
		return err
	}

	out, err := formatting.New(formatting.Options{Format: format}).FormatCatalog(application.Catalog())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	treeCmd.Flags().StringVarP(&treeOutput, "output", "o", string(formatting.FormatTable), "Output format (table, console, yaml, json)")
}
