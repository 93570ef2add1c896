// Package watcher reloads model files when they change on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/philipparndt/gomodel/pkg/model"
	"github.com/philipparndt/gomodel/pkg/obj"
)

// Handler receives the freshly imported model, or the import error, for a
// changed file.
type Handler func(path string, m *model.Model, err error)

// ModelWatcher watches model files and re-imports them after changes.
// Rapid successive writes to one file are coalesced into one reload.
type ModelWatcher struct {
	watcher  *fsnotify.Watcher
	importer *obj.Importer
	log      *zap.Logger
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]Handler
	dirs     map[string]int
	timers   map[string]*time.Timer
	pending  sync.WaitGroup
	loop     sync.WaitGroup
}

// New creates a watcher. The importer decides which files can be watched;
// a nil logger disables logging.
func New(debounce time.Duration, importer *obj.Importer, log *zap.Logger) (*ModelWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &ModelWatcher{
		watcher:  w,
		importer: importer,
		log:      log,
		debounce: debounce,
		handlers: make(map[string]Handler),
		dirs:     make(map[string]int),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers files and calls h after each of them changes. The
// parent directories are watched so that editors replacing a file by
// rename are noticed too.
func (w *ModelWatcher) Watch(files []string, h Handler) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		if err := w.importer.Validate(file); err != nil {
			return err
		}
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if _, seen := w.handlers[absPath]; !seen {
			if w.dirs[dir] == 0 {
				if err := w.watcher.Add(dir); err != nil {
					return fmt.Errorf("failed to watch %s: %w", dir, err)
				}
			}
			w.dirs[dir]++
		}
		w.handlers[absPath] = h
		w.log.Debug("watching model", zap.String("file", absPath))
	}
	return nil
}

// Start begins watching for file changes. Events are handled on one
// goroutine until Close.
func (w *ModelWatcher) Start() {
	w.loop.Add(1)
	go func() {
		defer w.loop.Done()
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					w.handleFileChange(filepath.Clean(event.Name))
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
}

// handleFileChange schedules a reload, replacing one already pending
func (w *ModelWatcher) handleFileChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	h, ok := w.handlers[path]
	if !ok {
		return
	}
	if timer, ok := w.timers[path]; ok && timer.Stop() {
		w.pending.Done()
	}

	w.pending.Add(1)
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		defer w.pending.Done()
		w.reload(path, h)
	})
}

func (w *ModelWatcher) reload(path string, h Handler) {
	m, err := w.importer.ImportFile(path)
	if err != nil {
		w.log.Warn("reload failed", zap.String("file", path), zap.Error(err))
	} else {
		w.log.Debug("reloaded model", zap.String("file", path), zap.Int("elements", m.ElementCount()))
	}
	h(path, m, err)
}

func (w *ModelWatcher) stopTimers() {
	for path, timer := range w.timers {
		if timer.Stop() {
			w.pending.Done()
		}
		delete(w.timers, path)
	}
}

// Close stops the watcher and waits for running reloads to finish.
// Reloads that were still waiting for their debounce delay are dropped.
func (w *ModelWatcher) Close() error {
	w.mu.Lock()
	w.stopTimers()
	w.mu.Unlock()

	err := w.watcher.Close()
	w.loop.Wait()
	w.pending.Wait()
	return err
}

// RemoveAll stops watching every registered file
func (w *ModelWatcher) RemoveAll() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopTimers()
	for dir := range w.dirs {
		if err := w.watcher.Remove(dir); err != nil {
			return err
		}
		delete(w.dirs, dir)
	}
	w.handlers = make(map[string]Handler)
	return nil
}
