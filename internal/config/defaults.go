package config

const (
	DefaultPrompt      = "cmdtree> "
	DefaultErrorPrefix = "error: "

	DefaultNotFoundTemplate = `{{ .Prefix }}Candidates: {{ .Candidates | join ", " }}`
	DefaultUsageTemplate    = `{{ .Prefix }}Usage: {{ .Usage }}`
	DefaultFailedTemplate   = `{{ .Prefix }}{{ .Message }}`

	defaultHistoryFile = ".cmdtree_history"
	defaultRosterFile  = "roster.yaml"
)

// DefaultCommands are the top-level names the built-in command set uses.
var DefaultCommands = []string{
	"?", "calc", "commands", "context", "exit", "help", "msg", "roster", "say", "tree",
}

// GetDefaultConfig returns the configuration used when no config.yaml exists.
func GetDefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Console: ConsoleConfig{
			Prompt:      DefaultPrompt,
			HistoryFile: defaultHistoryFile,
			ErrorPrefix: DefaultErrorPrefix,
			Color:       true,
			Commands:    append([]string(nil), DefaultCommands...),
			Contexts:    []string{"default"},
			RosterFile:  defaultRosterFile,
			Messages: MessagesConfig{
				NotFound: DefaultNotFoundTemplate,
				Usage:    DefaultUsageTemplate,
				Failed:   DefaultFailedTemplate,
			},
		},
		Registry: RegistryConfig{
			Collisions: CollisionsReject,
			Aliases:    AliasesResolve,
		},
	}
}
