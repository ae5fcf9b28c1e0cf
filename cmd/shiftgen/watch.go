package main

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor save bursts into one regeneration.
const debounceDelay = 250 * time.Millisecond

// watch regenerates the bindings whenever an input file changes, until
// the context is canceled.
func (c *GenCmd) watch(ctx context.Context, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := c.addWatchPaths(watcher); err != nil {
		return err
	}

	// Initial run so the output exists before the first change.
	if err := c.generate(ctx, logger); err != nil {
		logger.Error("generation failed", slog.String("error", err.Error()))
	}
	logger.Info("watching for changes", slog.Int("paths", len(watcher.WatchList())))

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !c.relevantEvent(event) {
				continue
			}
			logger.Debug("input changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			if err := c.generate(ctx, logger); err != nil {
				// Keep watching: the next save may fix the schema.
				logger.Error("generation failed", slog.String("error", err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", slog.String("error", err.Error()))
		}
	}
}

// addWatchPaths registers the input locations. Schema mode watches the
// document's directory, since editors typically replace the file on
// save. Package mode watches the working tree's directories.
func (c *GenCmd) addWatchPaths(watcher *fsnotify.Watcher) error {
	if c.Schema != "" {
		return watcher.Add(filepath.Dir(c.Schema))
	}

	outAbs, err := filepath.Abs(c.Out)
	if err != nil {
		return err
	}
	return filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != "." && (strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules") {
			return filepath.SkipDir
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		// Writing into a watched output directory would loop forever.
		if abs == outAbs || strings.HasPrefix(abs, outAbs+string(filepath.Separator)) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// relevantEvent filters events down to input file changes.
func (c *GenCmd) relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if c.Schema != "" {
		return filepath.Base(event.Name) == filepath.Base(c.Schema)
	}
	return strings.HasSuffix(event.Name, ".go") && !strings.HasSuffix(event.Name, "_test.go")
}
