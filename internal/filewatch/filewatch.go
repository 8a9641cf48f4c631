// Package filewatch reports external modifications to the open file so
// the editor can warn before the user overwrites someone else's changes.
package filewatch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one file and invokes a callback when another process
// writes, renames, or removes it. The callback runs on the watcher's
// goroutine; callers hand the notice off to their event loop.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	notify  func(string)

	mu        sync.Mutex
	suspended bool
	done      chan struct{}
}

// New starts watching the named file. The parent directory is watched
// rather than the file itself, so notices survive editors that replace
// the file by rename.
func New(path string, notify func(string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		notify:  notify,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Suspend mutes notifications while the editor itself writes the file.
func (w *Watcher) Suspend() {
	w.mu.Lock()
	w.suspended = true
	w.mu.Unlock()
}

// Resume re-enables notifications after a save completes.
func (w *Watcher) Resume() {
	w.mu.Lock()
	w.suspended = false
	w.mu.Unlock()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable mid-session; drop them.
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Name != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.mu.Lock()
	suspended := w.suspended
	w.mu.Unlock()
	if suspended {
		return
	}
	w.notify(filepath.Base(w.path))
}
