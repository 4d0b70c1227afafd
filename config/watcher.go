package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/logger"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a watcher waits for changes to settle.
const DefaultDebounce = 300 * time.Millisecond

// ChangeCallback is called once a burst of changes has settled. path is the
// last file that changed.
type ChangeCallback func(path string) error

// Watcher watches files for changes and triggers callbacks.
//
// The parent directories are watched rather than the files themselves, so
// files replaced by editors through rename keep being observed.
type Watcher struct {
	files          map[string]bool // absolute paths
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	lastChanged    string
	logger         *zap.SugaredLogger
}

// NewWatcher creates a watcher for paths.
func NewWatcher(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("nothing to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		files:          make(map[string]bool, len(paths)),
		watcher:        fw,
		debouncePeriod: DefaultDebounce,
		logger:         logger.ComponentLogger("config.watcher"),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// SetDebounce changes the settle period. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// OnChange registers a callback.
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins watching until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
}

// Stop stops watching for changes
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			// Only react to content changes
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debugw("Watcher detected change",
				logger.FieldPath, event.Name,
				"op", event.Op.String())
			w.scheduleCallbacks(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// scheduleCallbacks debounces rapid file changes
func (w *Watcher) scheduleCallbacks(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastChanged = path
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	path := w.lastChanged
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(path); err != nil {
			// Continue calling other callbacks even if one fails
			w.logger.Warnw("Watch callback error", logger.FieldPath, path, logger.FieldError, err)
		}
	}
}

// Watch starts a watcher for paths that calls cb after every settled
// change. The watcher stops when ctx is done.
func Watch(ctx context.Context, cb ChangeCallback, paths ...string) (*Watcher, error) {
	w, err := NewWatcher(paths...)
	if err != nil {
		return nil, err
	}
	w.OnChange(cb)
	w.Start(ctx)
	return w, nil
}
