package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses the burst of events one save produces.
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc is called after the watched file settles.
type ReloadFunc func(ctx context.Context) error

// Watcher reloads the site sheet when its file changes on disk.
type Watcher struct {
	path     string
	reload   ReloadFunc
	debounce time.Duration
	log      zerolog.Logger
}

func New(path string, reload ReloadFunc, debounce time.Duration, log zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		reload:   reload,
		debounce: debounce,
		log:      log.With().Str("component", "watch").Str("file", path).Logger(),
	}
}

// Run watches until ctx is done. The parent directory is watched rather than
// the file itself so editors that save by rename are still seen. Reload
// errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info().Msg("watching for changes")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(evt) {
				continue
			}
			w.log.Debug().Str("op", evt.Op.String()).Msg("change detected")
			timer.Reset(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")
		case <-timer.C:
			if err := w.reload(ctx); err != nil {
				w.log.Error().Err(err).Msg("reload failed")
			}
		}
	}
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}
