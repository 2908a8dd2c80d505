package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/giantswarm/cmdtree/pkg/logging"
	pkgstrings "github.com/giantswarm/cmdtree/pkg/strings"
)

// Registry owns a command tree, the named completion sources and the error
// handler, and dispatches and completes token sequences against them.
//
// Registration is expected to finish before Dispatch and Complete are used
// concurrently; the registry does no locking of its own.
type Registry struct {
	tree     *Tree
	sources  map[string]CompletionSource
	errors   ErrorHandler
	platform Platform

	// missingSources remembers the unregistered source names already
	// reported, so each is logged once.
	missingSources sync.Map
}

type registryOptions struct {
	tree     TreeOptions
	errors   ErrorHandler
	platform Platform
}

// Option configures a Registry.
type Option func(*registryOptions)

// WithErrorHandler replaces the DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *registryOptions) {
		o.errors = h
	}
}

// WithPlatform plugs the registry into a host platform.
func WithPlatform(p Platform) Option {
	return func(o *registryOptions) {
		o.platform = p
	}
}

// WithCollisionPolicy sets how name collisions are treated.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(o *registryOptions) {
		o.tree.Collisions = p
	}
}

// WithAliasPolicy sets how the walker treats aliases.
func WithAliasPolicy(p AliasPolicy) Option {
	return func(o *registryOptions) {
		o.tree.Aliases = p
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := registryOptions{errors: DefaultErrorHandler{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.errors == nil {
		o.errors = DefaultErrorHandler{}
	}

	r := &Registry{
		tree:     NewTree(o.tree),
		sources:  map[string]CompletionSource{},
		errors:   o.errors,
		platform: o.platform,
	}
	if o.platform != nil {
		for name, src := range o.platform.DefaultCompleters() {
			if name != "" && src != nil {
				r.sources[name] = src
			}
		}
	}
	return r
}

// Tree returns the registry's command tree.
func (r *Registry) Tree() *Tree {
	return r.tree
}

// Root returns the root branch of the command tree.
func (r *Registry) Root() Branch {
	return r.tree.Root()
}

// ErrorHandler returns the handler receiving dispatch failures.
func (r *Registry) ErrorHandler() ErrorHandler {
	return r.errors
}

// AddSource registers a named completion source, replacing any source
// already registered under name.
func (r *Registry) AddSource(name string, src CompletionSource) error {
	if name == "" {
		return configErrorf(name, "completion source name is empty")
	}
	if src == nil {
		return configErrorf(name, "completion source is nil")
	}
	r.sources[name] = src
	return nil
}

// Source returns the completion source registered under name.
func (r *Registry) Source(name string) (CompletionSource, bool) {
	src, ok := r.sources[name]
	return src, ok
}

// SourceNames returns the registered completion source names, sorted.
func (r *Registry) SourceNames() []string {
	return pkgstrings.SortedKeys(r.sources)
}

// Register parses line and adds the resulting command.
func (r *Registry) Register(line string, handler Handler, description string) error {
	cmd, err := ParseCommand(line, handler, description)
	if err != nil {
		return err
	}
	return r.Add(cmd)
}

// MustRegister is Register for static command tables; it panics on error.
func (r *Registry) MustRegister(line string, handler Handler, description string) {
	if err := r.Register(line, handler, description); err != nil {
		panic(fmt.Sprintf("cmdtree: failed to register %q: %v", line, err))
	}
}

// Add inserts cmd at its section path, creating intermediate branches.
func (r *Registry) Add(cmd *Command) error {
	if cmd == nil {
		return configErrorf("", "command is nil")
	}
	sections := cmd.sections
	parent, err := r.branchPath(sections[:len(sections)-1], cmd.Path())
	if err != nil {
		return err
	}
	if _, err := parent.AddCommand(sections[len(sections)-1], cmd); err != nil {
		return err
	}

	logging.Debug("Registry", "registered command %s", cmd)
	return nil
}

// AddAlias inserts an alias at path that redirects to target. Both are
// space separated section paths from the root.
func (r *Registry) AddAlias(path, target string) error {
	sections := strings.Fields(path)
	if len(sections) == 0 {
		return configErrorf(path, "alias path is empty")
	}
	for _, s := range sections {
		if IsParameterToken(s) {
			return configErrorf(path, "alias path contains parameter %q", s)
		}
	}

	parent, err := r.branchPath(sections[:len(sections)-1], path)
	if err != nil {
		return err
	}
	if _, err := parent.AddAlias(sections[len(sections)-1], target); err != nil {
		return err
	}

	logging.Debug("Registry", "registered alias %s -> %s", path, target)
	return nil
}

// branchPath announces the top-level name to the platform when it is new,
// then returns the branch at sections, creating it as needed.
func (r *Registry) branchPath(sections []string, input string) (Branch, error) {
	var top string
	if len(sections) > 0 {
		top = sections[0]
	} else {
		top = strings.Fields(input)[0]
	}
	if err := r.announce(top, input); err != nil {
		return Branch{}, err
	}

	branch := r.tree.Root()
	for _, s := range sections {
		next, err := branch.Branch(s)
		if err != nil {
			return Branch{}, err
		}
		branch = next
	}
	return branch, nil
}

func (r *Registry) announce(top, input string) error {
	if r.platform == nil {
		return nil
	}
	if _, exists := r.tree.Root().Child(top); exists {
		return nil
	}
	if err := r.platform.RegisterHandler(top, r); err != nil {
		return &ConfigurationError{Input: input, Message: "host platform refused top-level command", Err: err}
	}
	logging.Debug("Registry", "announced top-level command %s", top)
	return nil
}

// Entry is one row of a static command table for RegisterAll.
type Entry struct {
	Line        string
	Handler     Handler
	Description string
}

// RegisterAll registers entries in order and stops at the first failure.
func (r *Registry) RegisterAll(entries []Entry) error {
	for _, e := range entries {
		if err := r.Register(e.Line, e.Handler, e.Description); err != nil {
			return fmt.Errorf("failed to register %q: %w", e.Line, err)
		}
	}
	return nil
}

// Dispatch walks tokens to a command, binds its arguments strictly and runs
// its handler. Not-found, shortfall and ExecutionError failures go to the
// error handler and Dispatch returns nil. Any other handler error is
// returned wrapped.
func (r *Registry) Dispatch(ctx context.Context, caller Caller, tokens []string) error {
	walk := r.tree.Walk(tokens)
	node, ok := walk.Command()
	if !ok {
		r.errors.OnCommandNotFound(ctx, r, caller, walk.Deepest())
		return nil
	}

	cmd := node.Command()
	args, err := cmd.Bind(walk.Leftover(), false)
	if err != nil {
		var shortfall *ArgumentShortfallError
		if errors.As(err, &shortfall) {
			r.errors.OnArgumentShortfall(ctx, r, caller, cmd)
			return nil
		}
		return err
	}

	err = cmd.Handler().Execute(ctx, ExecutionData{
		Registry: r,
		Caller:   caller,
		Command:  node,
		Args:     args,
	})
	if err == nil {
		return nil
	}

	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		r.errors.OnExecutionFailed(ctx, r, caller, execErr)
		return nil
	}
	return fmt.Errorf("command %q failed: %w", cmd.Path(), err)
}

// Complete returns candidates for the token at pos.
//
// With PositionCurrent the last token is the partial text being typed and
// is left out of the walk; with PositionNext a new empty token is being
// started. When the walk ends on a branch with every other token consumed,
// the candidates are that branch's child names (aliases excluded) starting
// with the partial text. When it ends on a command, the parameter under the
// cursor is completed by its named source, or by the command's handler when
// it has none, and the source's result is returned unchanged.
func (r *Registry) Complete(ctx context.Context, caller Caller, pos Position, tokens []string) []string {
	completing := ""
	walked := tokens
	if pos == PositionCurrent && len(tokens) > 0 {
		completing = tokens[len(tokens)-1]
		walked = tokens[:len(tokens)-1]
	}

	walk := r.tree.Walk(walked)
	node, ok := walk.Command()
	if !ok {
		if len(walk.Leftover()) != 0 {
			return []string{}
		}
		return pkgstrings.FilterPrefix(walk.Deepest().ChildNames(false), completing)
	}

	cmd := node.Command()
	params := cmd.Parameters()
	if params.Len() == 0 {
		return []string{}
	}

	leftover := walk.Leftover()
	active := params.At(min(params.Len()-1, len(leftover)))
	args, err := cmd.Bind(append(slices.Clone(leftover), completing), true)
	if err != nil {
		panic(fmt.Sprintf("cmdtree: tolerant bind of %q failed: %v", cmd.Path(), err))
	}

	candidates := r.sourceFor(active, cmd).Complete(ctx, CompletionData{
		Caller:    caller,
		Command:   node,
		Parameter: active.Name,
		Current:   args.GetOr(active.Name, ""),
	})
	if candidates == nil {
		return []string{}
	}
	return candidates
}

func (r *Registry) sourceFor(p Parameter, cmd *Command) CompletionSource {
	if p.Source == "" {
		return cmd.Handler()
	}
	if src, ok := r.sources[p.Source]; ok {
		return src
	}
	if _, reported := r.missingSources.LoadOrStore(p.Source, true); !reported {
		logging.Warn("Registry", "Completion source %q used by %s is not registered, completing with the command handler", p.Source, cmd.Path())
	}
	return cmd.Handler()
}
