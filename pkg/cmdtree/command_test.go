package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		expectSections []string
		expectParams   string
		expectError    bool
	}{
		{name: "sections only", line: "foo bar", expectSections: []string{"foo", "bar"}},
		{name: "sections and parameters", line: "tp <player:users> [target]", expectSections: []string{"tp"}, expectParams: "<player:users> [target]"},
		{name: "extra whitespace", line: "  foo   <a>  ", expectSections: []string{"foo"}, expectParams: "<a>"},
		{name: "empty", line: "   ", expectError: true},
		{name: "parameters only", line: "<a> <b>", expectError: true},
		{name: "section after parameter", line: "foo <a> bar", expectError: true},
		{name: "invalid parameter list", line: "foo [a] <b>", expectError: true},
		{name: "duplicate parameter", line: "foo <a> <a>", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line, noop(), "desc")
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectSections, cmd.Sections())
			assert.Equal(t, tt.expectParams, cmd.Parameters().String())
			assert.Equal(t, "desc", cmd.Description())
		})
	}
}

func TestCommandRendering(t *testing.T) {
	cmd, err := ParseCommand("msg <user:users> <message>", noop(), "")
	require.NoError(t, err)

	assert.Equal(t, "msg", cmd.Path())
	assert.Equal(t, "msg <user> <message>", cmd.Usage())
	assert.Equal(t, "msg <user:users> <message>", cmd.String())

	bare, err := ParseCommand("help", noop(), "")
	require.NoError(t, err)
	assert.Equal(t, "help", bare.Usage())
	assert.Equal(t, "help", bare.String())
}

func TestNewCommandRequiresHandler(t *testing.T) {
	_, err := NewCommand([]string{"foo"}, Parameters{}, nil, "")
	assert.True(t, IsConfigurationError(err))

	_, err = NewCommand(nil, Parameters{}, noop(), "")
	assert.True(t, IsConfigurationError(err))

	_, err = NewCommand([]string{"a b"}, Parameters{}, noop(), "")
	assert.True(t, IsConfigurationError(err))
}

func TestCommandSectionsAreCopied(t *testing.T) {
	sections := []string{"foo", "bar"}
	cmd, err := NewCommand(sections, Parameters{}, noop(), "")
	require.NoError(t, err)

	sections[0] = "changed"
	got := cmd.Sections()
	got[1] = "changed"

	assert.Equal(t, "foo bar", cmd.Path())
}
