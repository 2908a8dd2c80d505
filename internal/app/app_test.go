package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/giantswarm/cmdtree/internal/config"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestApplication(t *testing.T, configYAML string) *Application {
	t.Helper()
	dir := t.TempDir()
	if configYAML != "" {
		writeFile(t, filepath.Join(dir, "config.yaml"), configYAML)
	}
	writeFile(t, filepath.Join(dir, "roster.yaml"), "users:\n  - name: alice\n  - name: bob\n")

	application, err := NewApplication(context.Background(), NewConfig(false, true, false, dir))
	require.NoError(t, err)
	return application
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, false, true, "/tmp/cfg")

	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Quiet)
	assert.True(t, cfg.Interactive)
	assert.Equal(t, "/tmp/cfg", cfg.ConfigPath)
	assert.Nil(t, cfg.Loaded)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *Config
		expected    logging.LogLevel
		expectError bool
	}{
		{name: "debug flag wins", cfg: &Config{Debug: true, Quiet: true}, expected: logging.LevelDebug},
		{name: "quiet flag", cfg: &Config{Quiet: true}, expected: logging.LevelError},
		{name: "nothing loaded", cfg: &Config{}, expected: logging.LevelInfo},
		{name: "configured", cfg: &Config{Loaded: &config.Config{LogLevel: "warn"}}, expected: logging.LevelWarn},
		{name: "invalid", cfg: &Config{Loaded: &config.Config{LogLevel: "loud"}}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := logLevel(tt.cfg)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestInitializeServicesRequiresLoadedConfig(t *testing.T) {
	_, err := InitializeServices(context.Background(), &Config{})
	assert.Error(t, err)
}

func TestInitializeServices(t *testing.T) {
	application := newTestApplication(t, "")
	services := application.Services()

	assert.Equal(t, []string{"alice", "bob"}, services.Roster.Names())
	assert.Equal(t, []string{"?", "calc", "commands", "context", "exit", "help", "msg", "roster", "say", "tree"}, services.Console.Names())
	assert.NotEmpty(t, application.Catalog())
}

func TestInitializeServicesRejectsUndeclaredBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "console:\n  commands: [help]\n")

	_, err := NewApplication(context.Background(), NewConfig(false, true, false, dir))
	require.Error(t, err)
	assert.True(t, cmdtree.IsConfigurationError(err))
}

func TestExec(t *testing.T) {
	application := newTestApplication(t, "console:\n  callerName: carol\n  errorPrefix: \"! \"\n")
	ctx := context.Background()

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "calc", line: "calc add 2 40", expected: "42\n"},
		{name: "say", line: "say hi all", expected: "carol: hi all\n"},
		{name: "msg", line: "msg bob ping", expected: "[carol -> bob] ping\n"},
		{name: "shortfall", line: "calc add 2", expected: "! Usage: calc add <a> <b>\n"},
		{name: "context starts at first configured", line: "context show", expected: "Current context: default\n"},
		{name: "unknown", line: "dance", expected: "Unknown command: dance. Type 'help' for available commands\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, application.Exec(ctx, tt.line, &out))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestExecCountsMetrics(t *testing.T) {
	application := newTestApplication(t, "")
	ctx := context.Background()

	require.NoError(t, application.Exec(ctx, "calc add 1 1", &bytes.Buffer{}))
	require.NoError(t, application.Exec(ctx, "calc", &bytes.Buffer{}))

	families, err := application.Services().Metrics.Registry().Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "cmdtree_dispatch_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			counts[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, counts["ok"])
	assert.Equal(t, 1.0, counts["not_found"])
}

func TestComplete(t *testing.T) {
	application := newTestApplication(t, "")
	ctx := context.Background()

	assert.Equal(t, []string{"add", "mul"}, application.Complete(ctx, "calc "))
	assert.Equal(t, []string{"alice"}, application.Complete(ctx, "msg a"))
	assert.Equal(t, []string{"json"}, application.CompleteTokens(ctx, cmdtree.PositionCurrent, []string{"tree", "j"}))
}

func TestNewApplicationInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "console: [\n")

	_, err := NewApplication(context.Background(), NewConfig(false, true, false, dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load cmdtree configuration")
}
