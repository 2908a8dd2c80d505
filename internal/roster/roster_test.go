package roster

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/giantswarm/cmdtree/pkg/cmdtree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	writeRoster(t, path, `
users:
  - name: carol
  - name: alice
    role: admin
  - name: " bob "
  - name: ALICE
  - name: "two words"
  - name: ""
`)

	r := New(path)
	n, err := r.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"alice", "bob", "carol"}, r.Names())
	assert.Equal(t, []User{{Name: "alice", Role: "admin"}, {Name: "bob"}, {Name: "carol"}}, r.Users())
	assert.Equal(t, path, r.Path())
}

func TestReloadMissingFile(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "absent.yaml"))

	n, err := r.Reload(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, r.Names())
}

func TestReloadMalformedKeepsPreviousUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	writeRoster(t, path, "users:\n  - name: alice\n")

	r := New(path)
	_, err := r.Reload(context.Background())
	require.NoError(t, err)

	writeRoster(t, path, "users: [\n")
	_, err = r.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse roster")
	assert.Equal(t, []string{"alice"}, r.Names())
}

func TestReloadCancelled(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "roster.yaml"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	writeRoster(t, path, "users:\n  - name: alice\n  - name: bob\n")
	r := New(path)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := r.Reload(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 2, n)
		}()
	}
	wg.Wait()
}

func TestLookupAndComplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	writeRoster(t, path, "users:\n  - name: Alice\n  - name: albert\n  - name: bob\n")
	r := New(path)
	_, err := r.Reload(context.Background())
	require.NoError(t, err)

	u, ok := r.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", u.Name)
	_, ok = r.Lookup("zed")
	assert.False(t, ok)

	var src cmdtree.CompletionSource = r
	assert.Equal(t, []string{"albert"}, src.Complete(context.Background(), cmdtree.CompletionData{Current: "al"}))
	assert.Equal(t, []string{"Alice", "albert", "bob"}, src.Complete(context.Background(), cmdtree.CompletionData{}))
}
