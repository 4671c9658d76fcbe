// Package policywatch reloads a standoff policy file when it changes on disk,
// so derived values can be recomputed without restarting.
package policywatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/ezladder/pkg/log"
	"github.com/bft-labs/ezladder/pkg/standoff"
)

// Loader reads and validates the policy at path.
type Loader func(path string) (standoff.Policy, error)

// Config holds configuration options for the policy watcher.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// Watcher monitors one policy file. Editors often replace files instead of
// writing them in place, so the parent directory is watched and events are
// filtered by file name.
type Watcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	load          Loader
	logger        log.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer

	// reloadMu serializes reloads and guards closed.
	reloadMu sync.Mutex
	closed   bool
}

// New creates a watcher for path. A nil logger discards output.
func New(path string, cfg Config, load Loader, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:          path,
		debounceDelay: cfg.DebounceDelay,
		load:          load,
		logger:        logger,
	}
}

// Start begins watching. onChange is called from a timer goroutine with each
// successfully reloaded policy; invalid policies are logged and skipped.
// Calls to onChange never overlap and none happen after Close returns.
// Start returns once the watch is registered.
func (w *Watcher) Start(ctx context.Context, onChange func(standoff.Policy)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	w.logger.Info("Policy watcher started", log.String("path", w.path), log.Duration("debounce", w.debounceDelay))

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fw, onChange)
	return nil
}

// Close stops the watcher and waits for the loop and any running reload to
// finish.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	w.wg.Wait()

	w.reloadMu.Lock()
	w.closed = true
	w.reloadMu.Unlock()
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, onChange func(standoff.Policy)) {
	defer w.wg.Done()
	defer fw.Close()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(ctx, onChange)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("Policy watcher: watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(ctx context.Context, onChange func(standoff.Policy)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		w.reloadMu.Lock()
		defer w.reloadMu.Unlock()
		if w.closed || ctx.Err() != nil {
			return
		}
		w.reload(onChange)
	})
}

func (w *Watcher) reload(onChange func(standoff.Policy)) {
	p, err := w.load(w.path)
	if err != nil {
		w.logger.Warn("Policy watcher: keeping previous policy", log.String("path", w.path), log.Err(err))
		return
	}
	w.logger.Info("Policy watcher: policy reloaded",
		log.Strings("skus", p.Catalog.SKUs()),
		log.Inches("min", p.Range.Min),
		log.Inches("max", p.Range.Max),
	)
	onChange(p)
}
