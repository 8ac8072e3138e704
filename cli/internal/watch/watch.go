// Package watch re-runs a callback whenever a schema file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/satishbabariya/pslcheck/internal/debug"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a file for changes
type Watcher struct {
	file     string
	callback func() error
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a new file watcher
func NewWatcher(file string, debounce time.Duration, callback func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Editors replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		file:     absPath,
		callback: callback,
		debounce: debounce,
		watcher:  watcher,
	}, nil
}

// Run calls the callback once, then again after every change to the file,
// until ctx is done. Callback errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.callback(); err != nil {
		debug.Warn("Watch callback failed", "file", w.file, "error", err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var debounceCh <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if eventPath, err := filepath.Abs(event.Name); err != nil || eventPath != w.file {
				continue
			}
			debug.Debug("Schema changed", "file", w.file, "op", event.Op.String())
			timer.Reset(w.debounce)
			debounceCh = timer.C

		case <-debounceCh:
			debounceCh = nil
			if err := w.callback(); err != nil {
				debug.Warn("Watch callback failed", "file", w.file, "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			debug.Error("Watch error", "file", w.file, "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
