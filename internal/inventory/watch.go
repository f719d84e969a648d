package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Source holds the wardrobe currently served to queries. Replace swaps it atomically
// with respect to Snapshot.
type Source struct {
	mu       sync.RWMutex
	wardrobe *Wardrobe
}

// NewSource creates a Source serving w.
func NewSource(w *Wardrobe) *Source {
	return &Source{wardrobe: w}
}

// Wardrobe returns the wardrobe currently served.
func (s *Source) Wardrobe() *Wardrobe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wardrobe
}

// Snapshot returns a snapshot of the wardrobe currently served.
func (s *Source) Snapshot() *Snapshot {
	return s.Wardrobe().Snapshot()
}

// Replace swaps in a new wardrobe.
func (s *Source) Replace(w *Wardrobe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wardrobe = w
}

// Watcher reloads a wardrobe file into a Source whenever the file changes.
// A file that fails to load is logged and the previous wardrobe stays in place.
type Watcher struct {
	path    string
	source  *Source
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors that replace the file on save are picked up.
func NewWatcher(path string, source *Source, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wardrobe path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, source: source, logger: logger, watcher: fw}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.Reload(); err != nil {
				w.logger.Warn("wardrobe reload failed, keeping previous wardrobe", "path", w.path, "error", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("wardrobe watcher error", "error", err)
		}
	}
}

// Reload loads the file and swaps it into the Source.
func (w *Watcher) Reload() error {
	wardrobe, err := LoadWardrobe(w.path)
	if err != nil {
		return err
	}
	w.source.Replace(wardrobe)
	w.logger.Info("wardrobe reloaded", "path", w.path, "items", wardrobe.Len())
	return nil
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
