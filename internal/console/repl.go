package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/giantswarm/cmdtree/pkg/logging"
)

// ErrExit is returned by a command handler to leave the console. It is not
// an ExecutionError, so it propagates out of dispatch.
var ErrExit = errors.New("exit")

// commandExecutionTimeout bounds a single command line.
const commandExecutionTimeout = 5 * time.Minute

// REPLConfig configures the line editor.
type REPLConfig struct {
	Prompt      string
	HistoryFile string // Empty disables history
	LogLevel    logging.LogLevel
	// Stdin and Stdout override the terminal, mainly for tests.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// REPL reads lines from a terminal and runs them on a console.
type REPL struct {
	console *Console
	session *Session
	config  REPLConfig
}

// NewREPL creates a REPL running lines for session on c.
func NewREPL(c *Console, session *Session, config REPLConfig) *REPL {
	return &REPL{console: c, session: session, config: config}
}

// Run reads and executes lines until EOF, an exit command or cancellation
// of ctx.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.config.Prompt,
		HistoryFile:     r.config.HistoryFile,
		AutoComplete:    &lineCompleter{ctx: ctx, console: r.console, caller: r.session},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           r.config.Stdin,
		Stdout:          r.config.Stdout,

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	// Log lines and command output must not tear the prompt.
	logging.InitForConsole(r.config.LogLevel, rl.Stderr())
	r.session.SetOutput(rl.Stdout())

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			rl.Close()
		case <-stop:
		}
	}()

	logging.Info("Console", "Session %s started for %s. Type 'help' for available commands. Use TAB for completion.", r.session.ID(), r.session.Name())

	for {
		if ctx.Err() != nil {
			logging.Info("Console", "Console shutting down...")
			return nil
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			logging.Info("Console", "Goodbye!")
			return nil
		} else if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if err := r.execute(ctx, input); err != nil {
			if errors.Is(err, ErrExit) {
				logging.Info("Console", "Goodbye!")
				return nil
			}
			logging.Error("Console", err, "Command failed")
			r.session.Print(fmt.Sprintf("Error: %v", err))
		}
	}
}

func (r *REPL) execute(ctx context.Context, line string) error {
	commandCtx, cancel := context.WithTimeout(ctx, commandExecutionTimeout)
	defer cancel()
	return r.console.ExecuteLine(commandCtx, r.session, line)
}
