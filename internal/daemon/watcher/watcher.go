// Package watcher watches the settings file so the shortcut can be changed
// without restarting the agent.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DebounceDelay collapses bursts of writes into one event.
const DebounceDelay = 100 * time.Millisecond

// Event reports that the settings file changed.
type Event struct {
	Path string
}

// Watcher watches a single file through its parent directory.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounce   *time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for the file at path.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		path:       filepath.Clean(path),
		eventsChan: make(chan Event, 1),
		done:       make(chan struct{}),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher. The parent directory is watched rather than the
// file, because editors and SaveYAML replace the file with a rename.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()

	log.Debug().Str("path", w.path).Msg("Watching settings file")
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("Settings watcher error")
		}
	}
}

// handleEvent filters events down to writes of the settings file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers atomic writes (write tmp, rename onto target).
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	log.Trace().Str("op", event.Op.String()).Str("path", event.Name).Msg("fsnotify")
	w.debounceEvent()
}

// debounceEvent restarts the debounce timer.
func (w *Watcher) debounceEvent() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(DebounceDelay, w.emit)
}

// emit coalesces with an event that has not been consumed yet.
func (w *Watcher) emit() {
	select {
	case <-w.done:
	case w.eventsChan <- Event{Path: w.path}:
	default:
	}
}
