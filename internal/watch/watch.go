// Package watch regenerates output whenever a menu source file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// BuildFunc regenerates output after the source changed.
type BuildFunc func(ctx context.Context) error

// Watcher monitors a single file and triggers debounced rebuilds.
type Watcher struct {
	path     string
	debounce time.Duration
	build    BuildFunc
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. The containing directory is watched since
// editors commonly replace files by rename.
func New(path string, debounce time.Duration, build BuildFunc, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, derrors.WatchFailed(path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, derrors.WatchFailed(path, err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		_ = fw.Close()
		return nil, derrors.WatchFailed(path, fmt.Errorf("watch directory: %w", err))
	}
	return &Watcher{
		path:     absPath,
		debounce: debounce,
		build:    build,
		logger:   logger,
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is done. Build failures are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	w.logger.Info("Watching menu source", logfields.Source(w.path))

	// Reset discards any pending fire (Go 1.23 timer semantics), which
	// coalesces a burst of events into one rebuild.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op.Has(fsnotify.Remove) {
				w.logger.Warn("Menu source removed", logfields.Source(ev.Name))
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Menu source change detected", logfields.Source(ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			w.rebuild(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Menu watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	start := time.Now()
	if err := w.build(ctx); err != nil {
		w.logger.Error("Rebuild failed; keeping previous output", logfields.Source(w.path), logfields.Error(err))
		return
	}
	w.logger.Info("Rebuild complete",
		logfields.Source(w.path),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}
