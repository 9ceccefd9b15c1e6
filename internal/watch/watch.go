// Package watch reports changes to a single file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file over the original keep
// being followed. Bursts of events are debounced into one notification.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tabletlab/tablet"
)

// ErrClosed is returned by Run when the underlying watcher shut down.
var ErrClosed = errors.New("watch: watcher closed")

// Watcher follows one file.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce *debouncer
	pending  chan struct{}
}

// New starts watching path. A debounce of zero selects DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: %s: %w", path, err)
	}
	return &Watcher{
		path:     abs,
		fs:       fsw,
		debounce: newDebouncer(debounce),
		pending:  make(chan struct{}, 1),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange after every burst of changes to the file, until ctx
// is done. onChange runs on the goroutine that called Run, so a slow
// reload delays the next one. It closes the watcher before returning and
// returns nil when ctx ends the loop.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.Close()
	log := tablet.Logger().With("path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return ErrClosed
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("watch: event", "op", ev.Op.String())
			w.debounce.trigger(w.signal)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrClosed
			}
			log.Warn("watch: watcher error", "err", err)

		case <-w.pending:
			onChange()
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.pending <- struct{}{}:
	default:
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.debounce.cancel()
	return w.fs.Close()
}
