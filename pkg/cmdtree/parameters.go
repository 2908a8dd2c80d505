package cmdtree

import (
	"slices"
	"strings"
)

// Args maps parameter names to the raw values bound to them.
type Args map[string]string

// Get returns the value bound to name.
func (a Args) Get(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// GetOr returns the value bound to name, or fallback when nothing was bound.
func (a Args) GetOr(name, fallback string) string {
	if v, ok := a[name]; ok {
		return v
	}
	return fallback
}

// Parameters is the ordered, validated parameter list of a command.
// Names are unique and no required parameter follows an optional one.
type Parameters struct {
	list []Parameter
}

// NewParameters validates params and keeps them in declared order.
func NewParameters(params ...Parameter) (Parameters, error) {
	seen := make(map[string]bool, len(params))
	optionalSeen := false
	for _, p := range params {
		if p.Name == "" {
			return Parameters{}, configErrorf(p.String(), "parameter name is empty")
		}
		if seen[p.Name] {
			return Parameters{}, configErrorf(p.String(), "duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = true

		if !p.Required {
			optionalSeen = true
		} else if optionalSeen {
			return Parameters{}, configErrorf(p.String(), "required parameter %q follows an optional parameter", p.Name)
		}
	}
	return Parameters{list: slices.Clone(params)}, nil
}

// ParseParameters parses and validates a sequence of parameter tokens.
func ParseParameters(tokens []string) (Parameters, error) {
	params := make([]Parameter, 0, len(tokens))
	for _, token := range tokens {
		p, err := ParseParameter(token)
		if err != nil {
			return Parameters{}, err
		}
		params = append(params, p)
	}
	return NewParameters(params...)
}

func (ps Parameters) Len() int {
	return len(ps.list)
}

func (ps Parameters) At(i int) Parameter {
	return ps.list[i]
}

// All returns a copy of the parameters in declared order.
func (ps Parameters) All() []Parameter {
	return slices.Clone(ps.list)
}

// Lookup finds a parameter by name.
func (ps Parameters) Lookup(name string) (Parameter, bool) {
	for _, p := range ps.list {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// SortedByName returns a copy ordered with Parameter.Compare. Binding
// always uses declared order.
func (ps Parameters) SortedByName() []Parameter {
	sorted := slices.Clone(ps.list)
	slices.SortFunc(sorted, Parameter.Compare)
	return sorted
}

// Usage renders the list as "<a> [b]".
func (ps Parameters) Usage() string {
	parts := make([]string, len(ps.list))
	for i, p := range ps.list {
		parts[i] = p.Usage()
	}
	return strings.Join(parts, " ")
}

// String renders the list in registration grammar, sources included.
func (ps Parameters) String() string {
	parts := make([]string, len(ps.list))
	for i, p := range ps.list {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// Bind assigns raw tokens to parameters in declared order, one token each.
// Tokens beyond the last parameter are joined with single spaces onto the
// last parameter's value.
//
// When raw runs out before a required parameter, Bind returns an
// ArgumentShortfallError, or the values bound so far if tolerateShortfall
// is set. Running out during the optional tail is not an error.
func (ps Parameters) Bind(raw []string, tolerateShortfall bool) (Args, error) {
	args := make(Args, len(ps.list))
	if len(ps.list) == 0 {
		return args, nil
	}

	for i, p := range ps.list {
		if i >= len(raw) {
			if !p.Required || tolerateShortfall {
				return args, nil
			}
			return nil, &ArgumentShortfallError{Missing: p, Bound: args}
		}
		args[p.Name] = raw[i]
	}

	if len(raw) > len(ps.list) {
		last := len(ps.list) - 1
		args[ps.list[last].Name] = strings.Join(raw[last:], " ")
	}
	return args, nil
}
