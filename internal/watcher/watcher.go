// Package watcher notices when a book file is changed by another process.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/networkbook/networkbook/internal/logger"
)

// DefaultDebounce is how long a book must be quiet before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Config describes what to watch.
type Config struct {
	Path     string
	Debounce time.Duration // DefaultDebounce when zero
	OnChange func()
}

// Watcher reports changes to one book file, once per burst of writes.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()

	// last relevant event not yet reported; owned by the Start loop
	pending time.Time
}

// New checks cfg and returns a watcher that is not yet running.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("book path is required")
	}
	if cfg.OnChange == nil {
		return nil, errors.New("change callback is required")
	}
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, err
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: path, debounce: debounce, onChange: cfg.OnChange}, nil
}

// Start watches until ctx is done, calling OnChange from its own goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	// Saves replace the file by rename, which drops a watch on the file
	// itself, so the directory is watched instead.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	logger.Logger.Debug("watching book", "path", w.path)

	tick := time.NewTicker(w.debounce / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.note(event, time.Now())
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Debug("watcher error", "path", w.path, "err", err)
		case now := <-tick.C:
			if w.due(now) {
				w.onChange()
			}
		}
	}
}

// note remembers event if it writes or creates the book file.
func (w *Watcher) note(event fsnotify.Event, now time.Time) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	logger.Logger.Debug("book event", "op", event.Op.String())
	w.pending = now
	return true
}

// due reports whether a pending change has been quiet for the debounce
// period, and clears it if so.
func (w *Watcher) due(now time.Time) bool {
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		return false
	}
	w.pending = time.Time{}
	return true
}
