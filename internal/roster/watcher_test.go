package roster

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewWatcherDefaults(t *testing.T) {
	w := NewWatcher(WatcherConfig{Path: "/tmp/roster.yaml"})

	assert.Equal(t, DefaultPollInterval, w.config.PollInterval)
	assert.Equal(t, DefaultDebounceInterval, w.config.Debounce)
	assert.False(t, w.IsRunning())
}

func TestWatcher_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWatcher(WatcherConfig{Path: filepath.Join(t.TempDir(), "roster.yaml")})

	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	require.NoError(t, w.Start(), "starting twice is a no-op")

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
	require.NoError(t, w.Stop(), "stopping twice is a no-op")
}

func TestWatcher_DetectsChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "roster.yaml")
	writeRoster(t, path, "users: []\n")

	var changes int32
	w := NewWatcher(WatcherConfig{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		OnChange: func() { atomic.AddInt32(&changes, 1) },
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	writeRoster(t, filepath.Join(filepath.Dir(path), "other.yaml"), "ignored")
	writeRoster(t, path, "users:\n  - name: alice\n")

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&changes) >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_PollingDetectsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	w := NewWatcher(WatcherConfig{Path: path})

	assert.False(t, w.checkForChanges(), "a missing file is the baseline")

	writeRoster(t, path, "users: []\n")
	assert.True(t, w.checkForChanges(), "appearing counts as a change")
	assert.False(t, w.checkForChanges())

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.True(t, w.checkForChanges())

	require.NoError(t, os.Remove(path))
	assert.True(t, w.checkForChanges(), "disappearing counts as a change")
}

func TestRosterWatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "roster.yaml")
	writeRoster(t, path, "users:\n  - name: alice\n")
	r := New(path)
	_, err := r.Reload(context.Background())
	require.NoError(t, err)

	w, err := r.Watch(WatcherConfig{Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	writeRoster(t, path, "users:\n  - name: alice\n  - name: bob\n")

	assert.Eventually(t, func() bool { return len(r.Names()) == 2 }, 2*time.Second, 10*time.Millisecond)
}
