// Package watch re-runs enforcement passes when the units folder changes.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is used when no debounce is configured
const DefaultDebounce = 300 * time.Millisecond

// Pass runs one enforcement pass
type Pass func(ctx context.Context) error

// Watcher runs a pass after each burst of changes under a directory.
// Passes run one at a time on the watcher's goroutine.
type Watcher struct {
	dir      string
	pass     Pass
	debounce time.Duration
	logger   zerolog.Logger
}

// New creates a watcher for dir
func New(dir string, pass Pass, debounce time.Duration, logger zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dir: dir, pass: pass, debounce: debounce, logger: logger}
}

// Run watches until ctx is cancelled. A failing pass is logged and the
// watcher keeps going.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot start file watcher")
	}
	defer func() { _ = watcher.Close() }()

	if err := w.addTree(watcher, w.dir); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot watch %s", w.dir).
			WithDetail("path", w.dir)
	}
	w.logger.Info().Str("dir", w.dir).Dur("debounce", w.debounce).Msg("watching for changes")

	// Single debounce timer, stopped until the first event
	debounceTimer := time.NewTimer(w.debounce)
	debounceTimer.Stop()
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounceTimer.C:
			w.runPass(ctx)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(watcher, event.Name); err != nil {
						w.logger.Warn().Err(err).Str("dir", event.Name).Msg("cannot watch new directory")
					}
				}
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("change detected")

			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) runPass(ctx context.Context) {
	start := time.Now()
	if err := w.pass(ctx); err != nil {
		w.logger.Error().Err(err).Msg("pass failed")
		return
	}
	w.logger.Info().Dur("duration", time.Since(start)).Msg("pass complete")
}

// addTree watches dir and every non-hidden directory below it
func (w *Watcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && ignored(path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// ignored skips hidden entries and editor swap files
func ignored(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") && !strings.HasPrefix(name, ".dictatable-config") ||
		strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp")
}
