// Package inbox imports backup files dropped into a watched directory.
package inbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"orchardlog/pkg/transfer"
)

const (
	ImportedSuffix = ".imported"
	RejectedSuffix = ".rejected"
)

type Importer interface {
	Import(ctx context.Context, r io.Reader) (transfer.ImportResult, error)
}

// Watcher waits for a *.json file to stop changing for Settle before importing it.
type Watcher struct {
	dir    string
	im     Importer
	Settle time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func New(dir string, im Importer) *Watcher {
	return &Watcher{dir: dir, im: im, Settle: 500 * time.Millisecond, pending: map[string]*time.Timer{}}
}

// Run imports files already present, then watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inbox watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("inbox watch %s: %w", w.dir, err)
	}
	w.Scan(ctx)
	slog.Info("import inbox watching", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				w.schedule(ctx, ev.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("import inbox watch error", "error", err)
		}
	}
}

// Scan imports every backup file currently in the directory.
func (w *Watcher) Scan(ctx context.Context) {
	matches, err := filepath.Glob(filepath.Join(w.dir, "*.json"))
	if err != nil {
		slog.Warn("import inbox scan failed", "dir", w.dir, "error", err)
		return
	}
	for _, m := range matches {
		w.ProcessFile(ctx, m)
	}
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	if !isBackupFile(path) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Reset(w.Settle)
		return
	}
	w.pending[path] = time.AfterFunc(w.Settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.ProcessFile(ctx, path)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for p, t := range w.pending {
		t.Stop()
		delete(w.pending, p)
	}
}

// ProcessFile imports path and renames it with the outcome suffix.
func (w *Watcher) ProcessFile(ctx context.Context, path string) {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("import inbox open failed", "file", path, "error", err)
		}
		return
	}
	res, err := w.im.Import(ctx, f)
	f.Close()

	suffix := ImportedSuffix
	if err != nil {
		suffix = RejectedSuffix
		slog.Warn("import inbox rejected file", "file", path, "error", err)
	} else {
		slog.Info("import inbox imported file", "file", path, "replaced", res.Replaced)
	}
	if err := os.Rename(path, path+suffix); err != nil {
		slog.Error("import inbox rename failed", "file", path, "error", err)
	}
}

func isBackupFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
