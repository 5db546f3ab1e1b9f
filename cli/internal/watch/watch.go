// Package watch re-runs a callback when a schema file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of writes from editors into one change.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a single file for changes
type Watcher struct {
	file     string
	onChange func() error
	onError  func(error)
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before onChange runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler receives callback and watcher errors. Without it errors
// are dropped and watching continues.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New creates a watcher for file. The containing directory is watched so
// that editors replacing the file by rename are noticed.
func New(file string, onChange func() error, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	w := &Watcher{
		file:     absPath,
		onChange: onChange,
		onError:  func(error) {},
		debounce: DefaultDebounce,
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run calls onChange once, then again after every change to the file,
// until ctx is done. It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	if err := w.onChange(); err != nil {
		w.onError(err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if path, err := filepath.Abs(event.Name); err != nil || path != w.file {
				continue
			}
			timer.Reset(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.onChange(); err != nil {
				w.onError(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}
