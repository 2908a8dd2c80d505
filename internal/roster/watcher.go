package roster

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giantswarm/cmdtree/pkg/logging"
)

const (
	// DefaultDebounceInterval is the time to wait after the last change
	// before reloading.
	DefaultDebounceInterval = 250 * time.Millisecond

	// DefaultPollInterval is used when fsnotify cannot watch the directory.
	DefaultPollInterval = 2 * time.Second
)

// WatcherConfig holds configuration for a file watcher.
type WatcherConfig struct {
	// Path is the watched file. Its directory is watched so editors that
	// replace the file atomically are noticed.
	Path string

	PollInterval time.Duration
	Debounce     time.Duration

	// OnChange is called after the file changed and stayed quiet for Debounce.
	OnChange func()
}

// Watcher monitors one file with fsnotify, falling back to polling its
// modification time.
type Watcher struct {
	mu sync.Mutex

	config WatcherConfig

	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	done      sync.WaitGroup
	running   bool

	lastModTime time.Time

	debounceTimer *time.Timer
	debounceMu    sync.Mutex
}

// NewWatcher creates a stopped watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.PollInterval == 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.Debounce == 0 {
		config.Debounce = DefaultDebounceInterval
	}
	return &Watcher{config: config}
}

// Start begins watching. Starting a running watcher is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.stopCh = make(chan struct{})
	w.running = true

	dir := filepath.Dir(w.config.Path)
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		if err = watcher.Add(dir); err != nil {
			watcher.Close()
		}
	}
	if err != nil {
		logging.Warn("RosterWatcher", "Cannot watch %s, falling back to polling: %v", dir, err)
		w.done.Add(1)
		go w.pollForChanges(w.stopCh)
		return nil
	}

	w.fsWatcher = watcher
	w.done.Add(1)
	go w.processEvents(w.stopCh, watcher.Events, watcher.Errors)

	logging.Info("RosterWatcher", "Started watching %s", w.config.Path)
	return nil
}

// processEvents handles fsnotify events until stopCh closes.
func (w *Watcher) processEvents(stopCh <-chan struct{}, eventsCh <-chan fsnotify.Event, errorsCh <-chan error) {
	defer w.done.Done()
	for {
		select {
		case <-stopCh:
			return

		case event, ok := <-eventsCh:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-errorsCh:
			if !ok {
				return
			}
			logging.Error("RosterWatcher", err, "fsnotify error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.config.Path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	logging.Debug("RosterWatcher", "Roster file changed: %s (%s)", event.Name, event.Op)
	w.triggerDebounced()
}

// triggerDebounced calls OnChange once the file has been quiet for the
// debounce interval.
func (w *Watcher) triggerDebounced() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.config.Debounce, func() {
		w.mu.Lock()
		running := w.running
		callback := w.config.OnChange
		w.mu.Unlock()

		if running && callback != nil {
			callback()
		}
	})
}

func (w *Watcher) pollForChanges(stopCh <-chan struct{}) {
	defer w.done.Done()
	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	w.checkForChanges()

	for {
		select {
		case <-stopCh:
			return

		case <-ticker.C:
			if w.checkForChanges() {
				logging.Debug("RosterWatcher", "Roster change detected via polling")
				w.triggerDebounced()
			}
		}
	}
}

// checkForChanges reports whether the file's modification time moved since
// the previous check. Appearing and disappearing count as changes.
func (w *Watcher) checkForChanges() bool {
	var modTime time.Time
	if info, err := os.Stat(w.config.Path); err == nil {
		modTime = info.ModTime()
	}

	changed := !modTime.Equal(w.lastModTime)
	w.lastModTime = modTime
	return changed
}

// Stop stops the watcher and waits for its goroutine to exit. Stopping a
// stopped watcher is a no-op.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)

	w.debounceMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMu.Unlock()

	var closeErr error
	if w.fsWatcher != nil {
		closeErr = w.fsWatcher.Close()
		w.fsWatcher = nil
	}
	w.mu.Unlock()

	w.done.Wait()
	if closeErr != nil {
		logging.Warn("RosterWatcher", "Error closing fsnotify watcher: %v", closeErr)
	}
	logging.Info("RosterWatcher", "Stopped watching %s", w.config.Path)
	return nil
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Watch starts a watcher that reloads the roster whenever its file changes.
// The caller stops it.
func (r *Roster) Watch(config WatcherConfig) (*Watcher, error) {
	config.Path = r.path
	config.OnChange = func() {
		if _, err := r.Reload(context.Background()); err != nil {
			logging.Error("Roster", err, "Reload after change failed, keeping previous users")
		}
	}

	w := NewWatcher(config)
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}
