// Package watcher reports changes to the files next to a session file.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher with fsnotify. It watches a single directory;
// editors that save by rename are covered because the directory entry changes.
// The fsnotify handle is opened by Start, so a Watcher that is never started holds
// no OS resources.
type Watcher struct {
	logger    ports.Logger
	events    chan ports.WatchEvent
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	stopped   bool
}

// NewWatcher creates a Watcher. Watch errors are reported to logger.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching dir. Events stop when ctx is done or Stop is called.
// A Watcher can be started once.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.stopped:
		return zerr.With(domain.ErrWatcherFailed, "reason", "watcher stopped")
	case w.fsWatcher != nil:
		return zerr.With(domain.ErrWatcherFailed, "reason", "watcher already started")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "dir", dir)
	}

	w.fsWatcher = fw
	go w.processEvents(ctx, fw)
	return nil
}

// Stop releases the underlying watcher. It is safe to call more than once, and
// before Start.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator over file events. It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fw *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// convertEvent maps an fsnotify event to a WatchEvent. Chmod-only events are dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)

	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: path, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: path, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
