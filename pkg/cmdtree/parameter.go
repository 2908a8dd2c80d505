package cmdtree

import (
	"regexp"
	"strings"
)

// parameterPattern matches "<name>", "[name]", "<name:source>" and
// "[name:source]". Names and sources never contain brackets; the name ends
// at the first colon. Bracket pairing is checked separately.
var parameterPattern = regexp.MustCompile(`^([<\[])([^:<>\[\]]*)(?::([^<>\[\]]*))?([>\]])$`)

// Parameter is one named argument slot of a command.
type Parameter struct {
	Name     string
	Required bool
	// Source names the completion source for this parameter. Empty means
	// the command's own handler completes it.
	Source string
}

// IsParameterToken reports whether token uses the parameter grammar, without
// validating its contents.
func IsParameterToken(token string) bool {
	m := parameterPattern.FindStringSubmatch(token)
	return m != nil && pairedBrackets(m[1], m[4])
}

// ParseParameter parses a "<name>", "[name]", "<name:source>" or
// "[name:source]" token.
func ParseParameter(token string) (Parameter, error) {
	m := parameterPattern.FindStringSubmatch(token)
	if m == nil || !pairedBrackets(m[1], m[4]) {
		return Parameter{}, configErrorf(token, "not a parameter, expected <name>, [name], <name:source> or [name:source]")
	}

	p := Parameter{
		Name:     m[2],
		Required: m[1] == "<",
		Source:   m[3],
	}
	if p.Name == "" {
		return Parameter{}, configErrorf(token, "parameter name is empty")
	}
	if strings.Contains(token, ":") && p.Source == "" {
		return Parameter{}, configErrorf(token, "completion source name is empty")
	}
	return p, nil
}

func pairedBrackets(open, close string) bool {
	return (open == "<" && close == ">") || (open == "[" && close == "]")
}

// Usage renders the parameter without its completion source.
func (p Parameter) Usage() string {
	if p.Required {
		return "<" + p.Name + ">"
	}
	return "[" + p.Name + "]"
}

// String renders the parameter in the registration grammar, including its
// completion source when it has one.
func (p Parameter) String() string {
	if p.Source == "" {
		return p.Usage()
	}
	if p.Required {
		return "<" + p.Name + ":" + p.Source + ">"
	}
	return "[" + p.Name + ":" + p.Source + "]"
}

// Compare orders parameters by name, then required before optional, then
// by source.
func (p Parameter) Compare(other Parameter) int {
	if c := strings.Compare(p.Name, other.Name); c != 0 {
		return c
	}
	if p.Required != other.Required {
		if p.Required {
			return -1
		}
		return 1
	}
	return strings.Compare(p.Source, other.Source)
}
