package console

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"
	pkgstrings "github.com/giantswarm/cmdtree/pkg/strings"
)

// Options configures a Console.
type Options struct {
	// Commands are the top-level names registries may register under.
	Commands []string
	// Completers seed the named completion sources of every registry
	// attached to the console.
	Completers map[string]cmdtree.CompletionSource
	// Instrument, when set, wraps every dispatcher as it is attached.
	Instrument func(cmdtree.Dispatcher) cmdtree.Dispatcher
}

// Console is the host platform of the interactive shell. It accepts
// registrations for its declared top-level names and routes raw input lines
// to the registry owning their first token.
type Console struct {
	declared   map[string]bool
	completers map[string]cmdtree.CompletionSource
	instrument func(cmdtree.Dispatcher) cmdtree.Dispatcher

	mu       sync.RWMutex
	handlers map[string]cmdtree.Dispatcher
}

var _ cmdtree.Platform = (*Console)(nil)

// New creates a console accepting the declared commands.
func New(opts Options) *Console {
	c := &Console{
		declared:   make(map[string]bool, len(opts.Commands)),
		completers: make(map[string]cmdtree.CompletionSource, len(opts.Completers)),
		instrument: opts.Instrument,
		handlers:   make(map[string]cmdtree.Dispatcher),
	}
	for _, name := range opts.Commands {
		c.declared[name] = true
	}
	for name, src := range opts.Completers {
		c.completers[name] = src
	}
	return c
}

// RegisterHandler attaches d as the owner of the top-level name. Names not
// declared up front are refused, as are names another dispatcher owns.
func (c *Console) RegisterHandler(name string, d cmdtree.Dispatcher) error {
	if !c.declared[name] {
		return &cmdtree.CommandNotDeclaredError{Name: name}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.handlers[name]; exists {
		return fmt.Errorf("command %q is already handled by another registry", name)
	}
	if c.instrument != nil {
		d = c.instrument(d)
	}
	c.handlers[name] = d
	logging.Debug("Console", "Attached handler for %q", name)
	return nil
}

// DefaultCompleters returns the completion sources registries start with.
func (c *Console) DefaultCompleters() map[string]cmdtree.CompletionSource {
	result := make(map[string]cmdtree.CompletionSource, len(c.completers))
	for name, src := range c.completers {
		result[name] = src
	}
	return result
}

// Declared returns the declared top-level names, sorted.
func (c *Console) Declared() []string {
	return pkgstrings.SortedKeys(c.declared)
}

// Names returns the top-level names that have a handler, sorted.
func (c *Console) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pkgstrings.SortedKeys(c.handlers)
}

func (c *Console) handler(name string) (cmdtree.Dispatcher, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.handlers[name]
	return d, ok
}

// ExecuteLine runs one input line on behalf of caller. Blank lines are
// ignored and unknown top-level names are reported to the caller. Errors
// are those the owning registry did not recover from.
func (c *Console) ExecuteLine(ctx context.Context, caller cmdtree.Caller, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	d, ok := c.handler(tokens[0])
	if !ok {
		caller.Print(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands", tokens[0]))
		return nil
	}
	return d.Dispatch(ctx, caller, tokens)
}

// CompleteLine returns candidates for the end of line. A line ending in
// whitespace asks for the next token, otherwise the last token is being
// completed.
func (c *Console) CompleteLine(ctx context.Context, caller cmdtree.Caller, line string) []string {
	tokens := strings.Fields(line)
	pos := cmdtree.PositionCurrent
	if endsInSpace(line) {
		pos = cmdtree.PositionNext
	}

	if len(tokens) == 0 || (len(tokens) == 1 && pos == cmdtree.PositionCurrent) {
		current := ""
		if len(tokens) == 1 {
			current = tokens[0]
		}
		return pkgstrings.FilterPrefix(c.Names(), current)
	}

	d, ok := c.handler(tokens[0])
	if !ok {
		return []string{}
	}
	return d.Complete(ctx, caller, pos, tokens)
}

// endsInSpace reports whether line is empty or its last rune is whitespace.
func endsInSpace(line string) bool {
	if line == "" {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	return unicode.IsSpace(last)
}
