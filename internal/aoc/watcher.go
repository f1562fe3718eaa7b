// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to the input or description of a day.
type Watcher struct {
	// Debounce is the quiet period after the last event before a change is
	// reported.
	Debounce time.Duration

	dir    string
	logger *zap.Logger
}

// NewWatcher returns a watcher for the day directory dir.
func NewWatcher(dir string, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{Debounce: 100 * time.Millisecond, dir: dir, logger: logger}
}

// Watch calls onChange once per burst of writes to input.txt or README.md
// until ctx is done. onChange runs on the calling goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.logger.Debug("watching", zap.String("dir", w.dir), zap.Duration("debounce", w.Debounce))

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("file event", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(w.Debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	switch filepath.Base(event.Name) {
	case inputFile, readmeFile:
		return true
	}
	return false
}
