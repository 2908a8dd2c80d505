package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/giantswarm/cmdtree/internal/config"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args against a fresh
// configuration directory and returns what it printed.
func executeCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	configPath, debug, quiet = "", false, false
	completeNext, treeOutput = false, "table"
	t.Cleanup(func() {
		configPath, debug, quiet = "", false, false
		completeNext, treeOutput = false, "table"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--quiet", "--config-path", dir}, args...))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func newConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roster.yaml"), []byte("users:\n  - name: alice\n  - name: albert\n"), 0644))
	return dir
}

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "cmdtree", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)

	for _, flag := range []string{"config-path", "debug", "quiet"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "cmdtree version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "cmdtree version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, expected := range []string{"version", "console", "exec", "complete", "tree", "config"} {
		assert.True(t, found[expected], "expected subcommand %s to be registered", expected)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "generic", err: errors.New("boom"), expected: ExitCodeError},
		{name: "config file", err: fmt.Errorf("wrapped: %w", config.ConfigurationError{Message: "bad"}), expected: ExitCodeConfigError},
		{name: "declaration", err: fmt.Errorf("wrapped: %w", &cmdtree.ConfigurationError{Message: "bad"}), expected: ExitCodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getExitCode(tt.err))
		})
	}
}

func TestResolvedConfigPath(t *testing.T) {
	configPath = "/tmp/explicit"
	defer func() { configPath = "" }()

	assert.Equal(t, "/tmp/explicit", resolvedConfigPath())
}
