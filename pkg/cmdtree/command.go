package cmdtree

import (
	"slices"
	"strings"
)

// Command is an executable leaf: the section path that reaches it, its
// parameters, the handler and a one-line description.
type Command struct {
	sections    []string
	params      Parameters
	handler     Handler
	description string
}

// NewCommand builds a command from already parsed parts.
func NewCommand(sections []string, params Parameters, handler Handler, description string) (*Command, error) {
	path := strings.Join(sections, " ")
	if len(sections) == 0 {
		return nil, configErrorf(path, "command has no sections")
	}
	for _, s := range sections {
		if err := validateName(s); err != nil {
			return nil, &ConfigurationError{Input: path, Message: "invalid section", Err: err}
		}
	}
	if handler == nil {
		return nil, configErrorf(path, "handler is nil")
	}
	return &Command{
		sections:    slices.Clone(sections),
		params:      params,
		handler:     handler,
		description: description,
	}, nil
}

// ParseCommand parses a space separated registration string such as
// "teleport <player:players> [target]". Leading plain tokens are sections;
// every token after the first parameter must be a parameter too.
func ParseCommand(line string, handler Handler, description string) (*Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, configErrorf(line, "command string is empty")
	}

	split := len(tokens)
	for i, token := range tokens {
		if IsParameterToken(token) {
			split = i
			break
		}
	}
	for _, token := range tokens[split:] {
		if !IsParameterToken(token) {
			return nil, configErrorf(line, "section %q appears after a parameter", token)
		}
	}
	if split == 0 {
		return nil, configErrorf(line, "command has no sections")
	}

	params, err := ParseParameters(tokens[split:])
	if err != nil {
		return nil, &ConfigurationError{Input: line, Message: "invalid parameters", Err: err}
	}
	return NewCommand(tokens[:split], params, handler, description)
}

// Sections returns a copy of the section path.
func (c *Command) Sections() []string {
	return slices.Clone(c.sections)
}

// Path returns the sections joined with spaces.
func (c *Command) Path() string {
	return strings.Join(c.sections, " ")
}

func (c *Command) Parameters() Parameters {
	return c.params
}

func (c *Command) Handler() Handler {
	return c.handler
}

func (c *Command) Description() string {
	return c.description
}

// Usage renders the path followed by the parameters, without completion
// sources: "foo bar <a> [b]".
func (c *Command) Usage() string {
	if c.params.Len() == 0 {
		return c.Path()
	}
	return c.Path() + " " + c.params.Usage()
}

// String renders the command in registration grammar.
func (c *Command) String() string {
	if c.params.Len() == 0 {
		return c.Path()
	}
	return c.Path() + " " + c.params.String()
}

// Bind binds raw arguments to the command's parameters. See Parameters.Bind.
func (c *Command) Bind(raw []string, tolerateShortfall bool) (Args, error) {
	return c.params.Bind(raw, tolerateShortfall)
}
