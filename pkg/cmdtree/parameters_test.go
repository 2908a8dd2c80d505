package cmdtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T, tokens ...string) Parameters {
	t.Helper()
	ps, err := ParseParameters(tokens)
	require.NoError(t, err)
	return ps
}

func TestNewParametersValidation(t *testing.T) {
	tests := []struct {
		name        string
		tokens      []string
		expectError bool
	}{
		{name: "empty list", tokens: nil},
		{name: "required then optional", tokens: []string{"<a>", "[b]", "[c]"}},
		{name: "all optional", tokens: []string{"[a]", "[b]"}},
		{name: "duplicate name", tokens: []string{"<a>", "<a>"}, expectError: true},
		{name: "duplicate across kinds", tokens: []string{"<a>", "[a]"}, expectError: true},
		{name: "required after optional", tokens: []string{"[a]", "<b>"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParameters(tt.tokens)
			if tt.expectError {
				assert.True(t, IsConfigurationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBind(t *testing.T) {
	tests := []struct {
		name      string
		params    []string
		raw       []string
		tolerate  bool
		expected  Args
		shortfall string
	}{
		{
			name:     "surplus joins onto the last parameter",
			params:   []string{"<foo>", "<bar>"},
			raw:      []string{"a", "b", "c"},
			expected: Args{"foo": "a", "bar": "b c"},
		},
		{
			name:      "strict shortfall",
			params:    []string{"<foo>", "<bar>", "<buzz>"},
			raw:       []string{"a"},
			shortfall: "bar",
		},
		{
			name:     "tolerant shortfall",
			params:   []string{"<foo>", "<bar>", "<buzz>"},
			raw:      []string{"a"},
			tolerate: true,
			expected: Args{"foo": "a"},
		},
		{
			name:     "optional tail may run out",
			params:   []string{"[foo]", "[bar]"},
			raw:      []string{"a"},
			expected: Args{"foo": "a"},
		},
		{
			name:     "no parameters ignores input",
			params:   nil,
			raw:      []string{"a", "b"},
			expected: Args{},
		},
		{
			name:     "exact fit",
			params:   []string{"<a>", "[b]"},
			raw:      []string{"1", "2"},
			expected: Args{"a": "1", "b": "2"},
		},
		{
			name:     "single parameter captures everything",
			params:   []string{"<message>"},
			raw:      []string{"hello", "", "world"},
			expected: Args{"message": "hello  world"},
		},
		{
			name:      "nothing for a required parameter",
			params:    []string{"<a>"},
			raw:       nil,
			shortfall: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := mustParams(t, tt.params...)
			args, err := ps.Bind(tt.raw, tt.tolerate)

			if tt.shortfall != "" {
				var shortfall *ArgumentShortfallError
				require.True(t, errors.As(err, &shortfall))
				assert.Equal(t, tt.shortfall, shortfall.Missing.Name)
				assert.Nil(t, args)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestParametersAccessors(t *testing.T) {
	ps := mustParams(t, "<zed:users>", "[alpha]")

	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, "zed", ps.At(0).Name)
	assert.Equal(t, "<zed> [alpha]", ps.Usage())
	assert.Equal(t, "<zed:users> [alpha]", ps.String())

	p, ok := ps.Lookup("alpha")
	require.True(t, ok)
	assert.False(t, p.Required)
	_, ok = ps.Lookup("missing")
	assert.False(t, ok)

	sorted := ps.SortedByName()
	assert.Equal(t, "alpha", sorted[0].Name)
	assert.Equal(t, "zed", ps.At(0).Name, "sorting must not reorder the list")

	all := ps.All()
	all[0].Name = "mutated"
	assert.Equal(t, "zed", ps.At(0).Name)
}

func TestArgs(t *testing.T) {
	args := Args{"a": "1"}

	v, ok := args.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, "fallback", args.GetOr("b", "fallback"))
}
