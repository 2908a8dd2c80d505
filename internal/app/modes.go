package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/giantswarm/cmdtree/internal/console"
	"github.com/giantswarm/cmdtree/internal/roster"
	"github.com/giantswarm/cmdtree/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// runConsoleMode runs the interactive console for session.
//
// Alongside the console it runs:
//   - the metrics endpoint, when an address is configured
//   - a watcher reloading the roster whenever its file changes
//
// SIGTERM cancels everything. Ctrl+C is handled by the line editor and
// only clears the current line. Leaving the console stops the rest.
func runConsoleMode(ctx context.Context, cfg *Config, services *Services, session *console.Session) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	watcher, err := services.Roster.Watch(roster.WatcherConfig{})
	if err != nil {
		logging.Warn("Console", "Roster changes will not be picked up: %v", err)
	} else {
		defer watcher.Stop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if addr := cfg.Loaded.Metrics.Address; addr != "" {
		g.Go(func() error {
			return services.Metrics.ListenAndServe(gctx, addr)
		})
	}

	g.Go(func() error {
		defer cancel()
		repl := console.NewREPL(services.Console, session, console.REPLConfig{
			Prompt:      cfg.Loaded.Console.Prompt,
			HistoryFile: cfg.Loaded.Console.HistoryFile,
			LogLevel:    logging.CurrentLevel(),
			Stdout:      os.Stdout,
		})
		return repl.Run(gctx)
	})

	return g.Wait()
}
