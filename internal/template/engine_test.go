package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRender(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		data        map[string]interface{}
		expected    string
		expectError bool
	}{
		{
			name:     "plain field",
			source:   "{{ .Prefix }}{{ .Message }}",
			data:     map[string]interface{}{"Prefix": "! ", "Message": "boom"},
			expected: "! boom",
		},
		{
			name:     "sprig join",
			source:   `{{ .Candidates | join ", " }}`,
			data:     map[string]interface{}{"Candidates": []string{"a", "b"}},
			expected: "a, b",
		},
		{
			name:     "sprig upper and default",
			source:   `{{ .Name | default "nobody" | upper }}`,
			data:     map[string]interface{}{"Name": ""},
			expected: "NOBODY",
		},
		{
			name:        "missing key",
			source:      "{{ .Missing }}",
			data:        map[string]interface{}{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			require.NoError(t, e.Parse("msg", tt.source))

			got, err := e.Render("msg", tt.data)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEngineParseErrors(t *testing.T) {
	e := New()

	err := e.Parse("broken", "{{ .Prefix ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to parse template "broken"`)
	assert.False(t, e.Has("broken"))
	assert.Panics(t, func() { e.MustParse("broken", "{{ end }}") })

	_, err = e.Render("absent", nil)
	assert.EqualError(t, err, `template "absent" is not defined`)
}

func TestEngineNames(t *testing.T) {
	e := New()
	e.MustParse("usage", "u")
	e.MustParse("failed", "f")
	e.MustParse("usage", "u2")

	assert.Equal(t, []string{"failed", "usage"}, e.Names())
	got, err := e.Render("usage", nil)
	require.NoError(t, err)
	assert.Equal(t, "u2", got)
}

func TestMergeContexts(t *testing.T) {
	merged := MergeContexts(
		map[string]interface{}{"Prefix": "a", "Keep": 1},
		nil,
		map[string]interface{}{"Prefix": "b"},
	)
	assert.Equal(t, map[string]interface{}{"Prefix": "b", "Keep": 1}, merged)
}
