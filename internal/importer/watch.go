package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// HandleFunc processes one statement file that appeared in the watched dir.
type HandleFunc func(path string) error

// Watcher imports CSV files as they land in a directory. Files are handled
// one at a time, once writes to them have been quiet for the debounce
// interval.
type Watcher struct {
	dir      string
	handle   HandleFunc
	debounce time.Duration
	logger   *zap.Logger
}

// NewWatcher creates a Watcher for dir.
func NewWatcher(dir string, handle HandleFunc, debounce time.Duration, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{dir: dir, handle: handle, debounce: debounce, logger: logger}
}

// Run handles the CSV files already present, then watches for new ones until
// ctx is cancelled. Handler errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating import dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.logger.Info("watching for statements", zap.String("dir", w.dir))

	existing, err := Scan(w.dir)
	if err != nil {
		return err
	}
	for _, f := range existing {
		w.process(f.Path)
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isCSV(ev.Name) || (!ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write)) {
				continue
			}
			pending[ev.Name] = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, path)
				w.process(path)
			}
		}
	}
}

func (w *Watcher) process(path string) {
	if _, err := os.Stat(path); err != nil {
		// moved away already, typically by a previous handle
		return
	}
	if err := w.handle(path); err != nil {
		w.logger.Warn("import failed", zap.String("path", path), zap.Error(err))
	}
}
