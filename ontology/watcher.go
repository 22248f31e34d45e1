package ontology

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long the watcher waits for further changes
// before triggering a reload.
const defaultDebounce = 500 * time.Millisecond

// Watcher reloads a manager when its ontology or shape files change on
// disk. All reloads run on the watcher's own goroutine, which provides
// the single-writer discipline the lock-free manager requires: while a
// watcher is running, no other goroutine may call the manager.
type Watcher struct {
	manager  *Manager
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	// watched maps absolute file paths to their last content hash, so
	// events that do not change bytes are ignored.
	watched map[string]string

	pendingMu sync.Mutex
	pending   bool

	done chan struct{}
}

// NewWatcher creates a watcher over the manager's schema files. The
// debounce delay controls how long file changes are accumulated before a
// single reload; zero selects the default.
func NewWatcher(manager *Manager, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		manager:  manager,
		watcher:  fsw,
		logger:   logger,
		debounce: debounce,
		watched:  make(map[string]string),
		done:     make(chan struct{}),
	}

	ref := manager.ref
	for _, path := range []string{
		ref.CoreOntologyPath(),
		ref.DomainOntologyPath(),
		ref.CoreShapePath(),
		ref.DomainShapePath(),
	} {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		w.watched[abs] = fileHash(abs)
	}

	return w, nil
}

// Start begins watching and blocks until the context is cancelled or the
// underlying watcher closes. Editors typically replace files rather than
// writing in place, so the watch is placed on each parent directory.
func (w *Watcher) Start(ctx context.Context) error {
	defer close(w.done)

	dirs := make(map[string]bool)
	for path := range w.watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", "path", dir, "error", err)
		} else {
			w.logger.Debug("watching directory", "path", dir)
		}
	}

	w.logger.Info("ontology watcher started",
		"domain", w.manager.DomainName(),
		"files", len(w.watched),
		"debounce", w.debounce)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// Stop closes the watcher and waits for Start to return.
func (w *Watcher) Stop() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

// handleEvent marks a reload pending when a watched file actually changed.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	oldHash, ok := w.watched[abs]
	if !ok {
		return
	}

	newHash := fileHash(abs)
	if newHash == oldHash {
		return
	}
	w.watched[abs] = newHash

	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()

	w.logger.Debug("schema file change detected",
		"path", abs,
		"op", event.Op.String())
}

// flushPending performs one reload if any change is pending.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if !pending {
		return
	}

	if err := w.manager.Reload(); err != nil {
		w.logger.Error("ontology reload failed",
			"domain", w.manager.DomainName(),
			"error", err)
		return
	}
	w.logger.Info("ontology reloaded after file change",
		"domain", w.manager.DomainName())
}

// fileHash returns the SHA-256 hex digest of a file's content, or the
// empty string when the file cannot be read.
func fileHash(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
