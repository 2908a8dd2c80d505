package app

import (
	"context"
	"fmt"
	"os"

	"github.com/giantswarm/cmdtree/internal/builtin"
	"github.com/giantswarm/cmdtree/internal/config"
	"github.com/giantswarm/cmdtree/internal/console"
	"github.com/giantswarm/cmdtree/internal/metrics"
	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"
)

// Services holds the components a running application is assembled from.
//
// They are initialized in dependency order:
//  1. Roster, loaded from its file
//  2. Metrics collector
//  3. Console platform, seeded with the built-in completion sources
//  4. Registry attached to the console, with the built-in command set
type Services struct {
	Roster   *roster.Roster
	Metrics  *metrics.Collector
	Console  *console.Console
	Registry *cmdtree.Registry
}

// InitializeServices builds the services for cfg. cfg.Loaded must be set.
func InitializeServices(ctx context.Context, cfg *Config) (*Services, error) {
	loaded := cfg.Loaded
	if loaded == nil {
		return nil, fmt.Errorf("configuration has not been loaded")
	}

	r := roster.New(loaded.Console.RosterFile)
	if _, err := r.Reload(ctx); err != nil {
		logging.Warn("Services", "Starting with an empty roster: %v", err)
	}

	deps := builtin.Dependencies{
		Roster:   r,
		Contexts: loaded.Console.Contexts,
	}
	if cfg.Interactive {
		deps.SpinnerWriter = os.Stderr
		deps.Color = loaded.Console.Color
	}

	collector := metrics.New()
	messages, err := console.NewMessageErrorHandler(loaded.Console.ErrorPrefix, loaded.Console.Color && cfg.Interactive, loaded.Console.Messages)
	if err != nil {
		return nil, fmt.Errorf("failed to compile console messages: %w", err)
	}

	platform := console.New(console.Options{
		Commands:   loaded.Console.Commands,
		Completers: builtin.Sources(deps),
		Instrument: collector.Instrument,
	})

	opts := append(loaded.Registry.Options(),
		cmdtree.WithPlatform(platform),
		cmdtree.WithErrorHandler(collector.InstrumentErrorHandler(messages)),
	)
	registry := cmdtree.NewRegistry(opts...)
	if err := builtin.Register(registry, deps); err != nil {
		return nil, fmt.Errorf("failed to register built-in commands: %w", err)
	}
	logging.Debug("Services", "Registered %d commands under %v", len(registry.Commands()), platform.Names())

	return &Services{
		Roster:   r,
		Metrics:  collector,
		Console:  platform,
		Registry: registry,
	}, nil
}

// callerName is the name the local user is known by.
func callerName(cfg config.ConsoleConfig) string {
	if cfg.CallerName != "" {
		return cfg.CallerName
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "console"
}

// initialContext is the context a new session starts in.
func initialContext(cfg config.ConsoleConfig) string {
	if len(cfg.Contexts) > 0 {
		return cfg.Contexts[0]
	}
	return ""
}
