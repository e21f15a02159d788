// Package datawatch warns when data artifacts change underneath a
// long-running process. Loaded stores are immutable for the lifetime of
// the process; the watcher only reports, it never reloads.
package datawatch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/helix-labs/helix-hr/internal/logger"
)

// watchedFiles are the artifacts whose mutation invalidates loaded state.
var watchedFiles = map[string]struct{}{
	"employees.csv":      {},
	"leave_records.xlsx": {},
	"attendance.json":    {},
	"policy_vectors.bin": {},
	"policy_chunks.db":   {},
}

// Watcher reports changes to the data artifacts in one directory.
type Watcher struct {
	fs       *fsnotify.Watcher
	dataDir  string
	onChange func(name string)
	done     chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithOnChange replaces the default warn-log change handler.
func WithOnChange(fn func(name string)) Option {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// New starts watching dataDir and reports until Close is called.
func New(dataDir string, opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating data watcher: %w", err)
	}
	if err := fs.Add(dataDir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", dataDir, err)
	}

	w := &Watcher{
		fs:      fs,
		dataDir: dataDir,
		onChange: func(name string) {
			logger.Warn("data file %s changed on disk; loaded state is stale, restart to reload", name)
		},
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(event.Name)
			if _, watched := watchedFiles[name]; watched {
				w.onChange(name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("data watcher: %v", err)
		}
	}
}

// Close stops the watcher and waits for the event loop to drain.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}
