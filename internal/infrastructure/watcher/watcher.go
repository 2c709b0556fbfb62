// Package watcher reruns work when an input file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/clonecfg/internal/logging"
)

const defaultDebounce = 300 * time.Millisecond

// FileWatcher watches a single file. The parent directory is watched so
// editors that replace the file on save are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
}

// New creates a watcher for path. A non-positive debounce uses 300ms.
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &FileWatcher{path: abs, debounce: debounce}, nil
}

// Path returns the absolute watched path.
func (w *FileWatcher) Path() string {
	return w.path
}

// Run calls onChange after each burst of changes settles, one call at a time,
// until ctx is cancelled. Errors from onChange are logged and do not stop the loop.
func (w *FileWatcher) Run(ctx context.Context, onChange func(ctx context.Context) error) error {
	log := logging.FromContext(ctx).With().Str("component", "watcher").Str("path", w.path).Logger()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if cerr := fsw.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("failed to close watcher")
		}
	}()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	log.Info().Dur("debounce", w.debounce).Msg("watching for changes")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !relevant(ev.Op) {
				continue
			}
			log.Trace().Str("op", ev.Op.String()).Msg("file event")
			timer.Reset(w.debounce)

		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("watcher error")

		case <-timer.C:
			log.Debug().Msg("change settled")
			if err := onChange(ctx); err != nil {
				log.Error().Err(err).Msg("reload failed")
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
