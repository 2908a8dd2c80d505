package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/giantswarm/cmdtree/internal/config"
	"github.com/giantswarm/cmdtree/internal/console"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"
)

// Application bootstraps and runs cmdtree.
//
// Initialization happens in two phases:
//  1. Bootstrap: load configuration, initialize logging, build services
//  2. Execution: run the console, or a single line, against the services
//
// Example usage:
//
//	cfg := app.NewConfig(false, false, true, configPath)
//	application, err := app.NewApplication(ctx, cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to initialize application: %w", err)
//	}
//	return application.RunConsole(ctx)
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration from cfg.ConfigPath, configures
// logging and builds the services.
//
// The --debug and --quiet flags override the configured log level.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	loaded, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load cmdtree configuration from %s: %w", cfg.ConfigPath, err)
	}
	cfg.Loaded = &loaded

	level, err := logLevel(cfg)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level, os.Stderr)
	logging.Debug("Bootstrap", "Loaded configuration from %s", cfg.ConfigPath)

	services, err := InitializeServices(ctx, cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{config: cfg, services: services}, nil
}

func logLevel(cfg *Config) (logging.LogLevel, error) {
	switch {
	case cfg.Debug:
		return logging.LevelDebug, nil
	case cfg.Quiet:
		return logging.LevelError, nil
	}
	if cfg.Loaded == nil || cfg.Loaded.LogLevel == "" {
		return logging.LevelInfo, nil
	}
	level, err := logging.ParseLevel(cfg.Loaded.LogLevel)
	if err != nil {
		return logging.LevelInfo, fmt.Errorf("invalid logLevel in configuration: %w", err)
	}
	return level, nil
}

// Services returns the services the application was built with.
func (a *Application) Services() *Services {
	return a.services
}

// NewSession creates a session for the local user printing to out.
func (a *Application) NewSession(out io.Writer) *console.Session {
	return console.NewSession(callerName(a.config.Loaded.Console), out, initialContext(a.config.Loaded.Console))
}

// Exec runs a single command line, printing its output to out.
func (a *Application) Exec(ctx context.Context, line string, out io.Writer) error {
	return a.services.Console.ExecuteLine(ctx, a.NewSession(out), line)
}

// Complete returns the completion candidates for the end of line.
func (a *Application) Complete(ctx context.Context, line string) []string {
	return a.services.Console.CompleteLine(ctx, a.NewSession(io.Discard), line)
}

// CompleteTokens completes tokens at pos directly on the registry.
func (a *Application) CompleteTokens(ctx context.Context, pos cmdtree.Position, tokens []string) []string {
	return a.services.Registry.Complete(ctx, a.NewSession(io.Discard), pos, tokens)
}

// Catalog describes every registered command.
func (a *Application) Catalog() []cmdtree.CatalogEntry {
	return a.services.Registry.Catalog()
}

// RunConsole runs the interactive console until it exits or ctx is
// cancelled.
func (a *Application) RunConsole(ctx context.Context) error {
	return runConsoleMode(ctx, a.config, a.services, a.NewSession(os.Stdout))
}
