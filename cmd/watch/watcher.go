package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wuihee/c-rust-program-pairs/corpus"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

func watchMetadata(ctx context.Context, dirs []string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("skipping unwatchable directory", "dir", dir, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("none of the metadata directories could be watched")
	}

	// One debounce timer per file, so edits to different files validate
	// independently. Only this goroutine touches the map.
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range timers {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			path := event.Name
			if timer, exists := timers[path]; exists {
				timer.Stop()
			}
			timers[path] = time.AfterFunc(debounceInterval, func() {
				validateFile(path, logger)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return filepath.Ext(event.Name) == ".json"
}

func validateFile(path string, logger *slog.Logger) {
	if _, err := os.Stat(path); err != nil {
		// Removed between the event and the debounce firing.
		return
	}

	if _, err := corpus.Parse(path); err != nil {
		logger.Error("metadata validation failed", "path", path, "error", err)
		return
	}
	logger.Info("metadata file is valid", "path", path)
}
