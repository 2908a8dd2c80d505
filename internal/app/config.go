package app

import (
	"github.com/giantswarm/cmdtree/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug enables debug logging
	Debug bool

	// Quiet suppresses informational logging
	Quiet bool

	// Interactive is set when the application drives a terminal console
	Interactive bool

	// ConfigPath is the directory holding config.yaml and the roster
	ConfigPath string

	// Loaded is filled in during bootstrap
	Loaded *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug, quiet, interactive bool, configPath string) *Config {
	return &Config{
		Debug:       debug,
		Quiet:       quiet,
		Interactive: interactive,
		ConfigPath:  configPath,
	}
}
