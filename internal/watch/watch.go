// Package watch re-runs a callback when content files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/contentlint/internal/discover"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc receives the changed and removed content files of one batch,
// sorted and deduplicated.
type ChangeFunc func(ctx context.Context, changed, removed []string)

// Watcher watches a file or directory tree.
type Watcher struct {
	Root      string
	Recursive bool
	Debounce  time.Duration
	OnChange  ChangeFunc
	Logger    *slog.Logger
}

// Run blocks until ctx is cancelled, calling OnChange once per settled batch
// of events. Batches never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dirs, err := discover.Dirs(w.Root, w.Recursive)
	if err != nil {
		return err
	}
	// A single-file root watches its parent directory, so siblings are filtered out.
	singleFile := ""
	if info, err := os.Stat(w.Root); err == nil && !info.IsDir() {
		singleFile = filepath.Clean(w.Root)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Debug("watching", "root", w.Root, "dirs", len(dirs))

	var (
		mu      sync.Mutex
		changed = map[string]bool{}
		removed = map[string]bool{}
		timer   *time.Timer
		running sync.Mutex
	)

	flush := func() {
		running.Lock()
		defer running.Unlock()

		mu.Lock()
		c, r := keys(changed), keys(removed)
		clear(changed)
		clear(removed)
		mu.Unlock()

		if len(c) == 0 && len(r) == 0 {
			return
		}
		if ctx.Err() != nil {
			return
		}
		w.OnChange(ctx, c, r)
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			running.Lock()
			running.Unlock() //nolint:staticcheck // SA2001: waits for an in-flight batch
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New subdirectories need their own watch.
			if w.Recursive && event.Has(fsnotify.Create) {
				if sub, err := discover.Dirs(event.Name, true); err == nil && sub[0] == event.Name {
					for _, d := range sub {
						_ = watcher.Add(d)
					}
					continue
				}
			}

			if singleFile != "" && filepath.Clean(event.Name) != singleFile {
				continue
			}
			if !discover.IsContentFile(event.Name) {
				continue
			}

			mu.Lock()
			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				removed[event.Name] = true
				delete(changed, event.Name)
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				changed[event.Name] = true
				delete(removed, event.Name)
			default:
				mu.Unlock()
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, flush)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
