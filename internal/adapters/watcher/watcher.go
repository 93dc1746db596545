// Package watcher reports changes to lock files using fsnotify.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/podfiler/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const changeChannelBuffer = 16

// Watcher implements ports.Watcher.
// CocoaPods replaces Podfile.lock rather than editing it in place, so the parent
// directory of every lock is watched and events are filtered by file name.
type Watcher struct {
	logger ports.Logger
	window time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	watched   map[string]struct{}

	sendMu  sync.Mutex
	closed  bool
	stopped chan struct{}
	changes chan []string
}

// NewWatcher creates a watcher that batches changes over DefaultDebounceWindow.
// No file system resources are held until Start.
func NewWatcher(logger ports.Logger) *Watcher {
	return NewWatcherWithWindow(logger, DefaultDebounceWindow)
}

// NewWatcherWithWindow creates a watcher with a custom debounce window.
func NewWatcherWithWindow(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{
		logger:  logger,
		window:  window,
		stopped: make(chan struct{}),
		changes: make(chan []string, changeChannelBuffer),
	}
}

// Start begins watching paths.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.New("watcher already started")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}

	w.watched = make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.watched[clean] = struct{}{}

		dir := filepath.Dir(clean)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	w.fsWatcher = fsWatcher
	debouncer := NewDebouncer(w.window, w.emit(ctx))
	go w.processEvents(ctx, fsWatcher, debouncer)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Changes returns an iterator of debounced change batches.
// The iterator ends once the watcher has stopped.
func (w *Watcher) Changes() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for paths := range w.changes {
			if !yield(paths) {
				return
			}
		}
	}
}

// emit delivers a batch unless the watcher has stopped.
func (w *Watcher) emit(ctx context.Context) func([]string) {
	return func(paths []string) {
		w.sendMu.Lock()
		defer w.sendMu.Unlock()

		if w.closed {
			return
		}
		select {
		case w.changes <- paths:
		case <-w.stopped:
		case <-ctx.Done():
		}
	}
}

func (w *Watcher) shutdown() {
	close(w.stopped)

	w.sendMu.Lock()
	defer w.sendMu.Unlock()
	w.closed = true
	close(w.changes)
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher, debouncer *Debouncer) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if path, ok := w.watchedPath(event); ok {
				debouncer.Add(path)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

// watchedPath returns the cleaned path of an event that changed the content of a watched file.
func (w *Watcher) watchedPath(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	path := filepath.Clean(event.Name)
	_, ok := w.watched[path]
	return path, ok
}
