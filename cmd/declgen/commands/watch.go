package commands

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/declgen/declgen/errors"
	"github.com/declgen/declgen/logger"
)

// documentWatcher watches a declaration document for changes and triggers a
// regeneration callback, debouncing rapid saves.
type documentWatcher struct {
	path          string
	watcher       *fsnotify.Watcher
	onChange      func()
	mu            sync.Mutex
	debounceTimer *time.Timer
}

// Editors often replace files on save, so watch for Create as well as Write.
const debouncePeriod = 500 * time.Millisecond

func newDocumentWatcher(path string, onChange func()) (*documentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch document %s", path)
	}

	return &documentWatcher{
		path:     path,
		watcher:  watcher,
		onChange: onChange,
	}, nil
}

// Start begins watching for document changes.
func (dw *documentWatcher) Start() {
	go dw.watchLoop()
}

func (dw *documentWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Debugw("Document watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				dw.scheduleRegenerate()
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Document watcher error", "error", err)
		}
	}
}

// scheduleRegenerate debounces rapid file changes before regenerating.
func (dw *documentWatcher) scheduleRegenerate() {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.debounceTimer != nil {
		dw.debounceTimer.Stop()
	}
	dw.debounceTimer = time.AfterFunc(debouncePeriod, dw.onChange)
}

// Stop stops watching for document changes.
func (dw *documentWatcher) Stop() error {
	return dw.watcher.Close()
}
