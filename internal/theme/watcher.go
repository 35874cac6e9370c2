package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"calcd/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Controller when its FileStore's file is rewritten by
// another process, such as `calcd theme toggle` while the GUI is open.
type Watcher struct {
	path       string
	controller *Controller
	fsWatcher  *fsnotify.Watcher
	reloaded   chan struct{}
}

// NewWatcher watches the directory holding store's file. The directory is
// created if needed so the file can appear later.
func NewWatcher(store *FileStore, controller *Controller) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(store.Path())
	if err := ensureDir(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		path:       filepath.Clean(store.Path()),
		controller: controller,
		fsWatcher:  fsWatcher,
		reloaded:   make(chan struct{}, 1),
	}, nil
}

// Reloaded receives a value after each reload attempt. It is buffered by one
// and never blocks the watch loop.
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	log.LogWithFields(log.F("path", w.path)).Debug("watching theme file")
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := w.controller.Reload(); err != nil {
				log.LogWithError(err).Warn("could not reload theme preference")
			}
			select {
			case w.reloaded <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
