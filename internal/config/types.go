package config

import (
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
)

// Config is the top-level configuration structure for cmdtree.
type Config struct {
	LogLevel string         `yaml:"logLevel,omitempty"`
	Console  ConsoleConfig  `yaml:"console"`
	Registry RegistryConfig `yaml:"registry"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ConsoleConfig configures the interactive console host.
type ConsoleConfig struct {
	Prompt      string `yaml:"prompt,omitempty"`
	HistoryFile string `yaml:"historyFile,omitempty"` // Empty disables history
	ErrorPrefix string `yaml:"errorPrefix,omitempty"`
	Color       bool   `yaml:"color"`
	// CallerName is the name the local console user is known by. Defaults to $USER.
	CallerName string `yaml:"callerName,omitempty"`
	// Commands are the top-level command names the console accepts registrations for.
	Commands []string `yaml:"commands"`
	// Contexts feed the "contexts" completion source.
	Contexts   []string       `yaml:"contexts,omitempty"`
	RosterFile string         `yaml:"rosterFile,omitempty"` // Relative paths resolve against the config directory
	Messages   MessagesConfig `yaml:"messages"`
}

// MessagesConfig holds the text/template sources the console error handler
// renders. Sprig functions are available.
type MessagesConfig struct {
	NotFound string `yaml:"notFound,omitempty"` // .Prefix .Path .Candidates
	Usage    string `yaml:"usage,omitempty"`    // .Prefix .Path .Usage
	Failed   string `yaml:"failed,omitempty"`   // .Prefix .Message
}

// RegistryConfig selects the registry policies.
type RegistryConfig struct {
	Collisions string `yaml:"collisions,omitempty"` // reject | replace
	Aliases    string `yaml:"aliases,omitempty"`    // resolve | ignore
}

const (
	CollisionsReject  = "reject"
	CollisionsReplace = "replace"
	AliasesResolve    = "resolve"
	AliasesIgnore     = "ignore"
)

// CollisionPolicy maps the configured value onto the registry policy.
func (r RegistryConfig) CollisionPolicy() cmdtree.CollisionPolicy {
	if r.Collisions == CollisionsReplace {
		return cmdtree.ReplaceLeaves
	}
	return cmdtree.RejectCollisions
}

// AliasPolicy maps the configured value onto the registry policy.
func (r RegistryConfig) AliasPolicy() cmdtree.AliasPolicy {
	if r.Aliases == AliasesIgnore {
		return cmdtree.AliasIgnore
	}
	return cmdtree.AliasResolve
}

// Options returns the registry options matching the configuration.
func (r RegistryConfig) Options() []cmdtree.Option {
	return []cmdtree.Option{
		cmdtree.WithCollisionPolicy(r.CollisionPolicy()),
		cmdtree.WithAliasPolicy(r.AliasPolicy()),
	}
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Address string `yaml:"address,omitempty"` // Empty disables the endpoint
}
