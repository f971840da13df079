// Package configwatch reports edits to cartlab.yaml so a running session can
// pick up a new point limit or reader range.
package configwatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
	log      *slog.Logger
	debounce time.Duration
}

type Option func(*Watcher)

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// WithDebounce is useful for tests.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New watches the directory holding filePath, so editors that replace the
// file instead of writing in place are still seen.
func New(filePath string, onChange func(), opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("resolve %s: %w", filePath, err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:  fw,
		filePath: filepath.Clean(abs),
		onChange: onChange,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start blocks until ctx is done or the watcher is closed. Bursts of events
// within the debounce window produce a single onChange call.
func (w *Watcher) Start(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.log.Debug("configwatch.event", "path", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("configwatch.error", "err", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
