package cmd

import (
	"errors"
	"os"

	"github.com/giantswarm/cmdtree/internal/config"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfigError indicates invalid configuration or command declarations.
	ExitCodeConfigError = 2
)

var (
	// configPath is the directory holding config.yaml and the roster.
	// Defaults to ~/.config/cmdtree.
	configPath string

	// debug enables debug logging.
	debug bool

	// quiet suppresses everything but errors.
	quiet bool
)

// rootCmd represents the base command for the cmdtree application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cmdtree",
	Short: "Route text commands through a tree of handlers",
	Long: `cmdtree routes whitespace separated command lines to handlers organised
in a tree of command names, binds the remaining words to named parameters
and completes partially typed lines.

Run 'cmdtree console' for an interactive shell with tab completion, or
'cmdtree exec' to run a single line from scripts.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "cmdtree version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var fileErr config.ConfigurationError
	if errors.As(err, &fileErr) {
		return ExitCodeConfigError
	}
	if cmdtree.IsConfigurationError(err) {
		return ExitCodeConfigError
	}
	return ExitCodeError
}

// resolvedConfigPath returns --config-path, or the default directory.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetDefaultConfigPathOrPanic()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Configuration directory (default is $HOME/.config/cmdtree)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(newConfigCmd())
}
