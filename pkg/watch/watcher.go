package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrAlreadyStarted is returned by Watch on a watcher that has already
// been started. A FileWatcher runs once.
var ErrAlreadyStarted = errors.New("watcher already started")

// FileWatcher watches definition files for changes and reports each quiet
// batch of changed paths once.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   Config
	debounce *Debouncer
	onError  func(error)

	// file is set when Path names a single file.
	file string

	mu      sync.Mutex
	started bool
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Config contains configuration for the file watcher.
type Config struct {
	// Path is the file or directory to watch. Directories are watched
	// recursively.
	Path string

	// DebounceInterval is how long the tree must stay quiet before a batch
	// is delivered (default: 250ms).
	DebounceInterval time.Duration

	// Extensions lists the file extensions to report, e.g. ".yaml".
	Extensions []string

	// IncludeHidden reports dot files and descends into dot directories.
	IncludeHidden bool
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		DebounceInterval: 250 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml", ".json"},
	}
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithErrorHandler sets a function called for every fsnotify error. The
// watcher keeps running after an error.
func WithErrorHandler(fn func(error)) Option {
	return func(fw *FileWatcher) {
		fw.onError = fn
	}
}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher(cfg Config, logger *slog.Logger, opts ...Option) (*FileWatcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("watch path is required")
	}
	if cfg.DebounceInterval <= 0 {
		cfg.DebounceInterval = DefaultConfig().DebounceInterval
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		logger:  logger,
		config:  cfg,
		onError: func(error) {},
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// Watch starts watching and calls onChange with the sorted paths that
// changed in each debounced batch. It blocks until ctx is cancelled or Stop
// is called. onChange runs on the debouncer's goroutine, never concurrently
// with itself.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func(paths []string)) error {
	fw.mu.Lock()
	if fw.started {
		fw.mu.Unlock()
		return ErrAlreadyStarted
	}
	fw.started = true
	fw.running = true
	fw.debounce = NewDebouncer(fw.config.DebounceInterval, onChange)
	fw.mu.Unlock()

	defer func() {
		fw.debounce.Stop()
		_ = fw.watcher.Close()
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		close(fw.doneCh)
	}()

	if err := fw.addPath(fw.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	fw.logger.Info("File watcher started",
		"path", fw.config.Path,
		"debounce_ms", fw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("File watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			fw.logger.Error("File watcher error", "error", err)
			fw.onError(err)
		}
	}
}

// Stop stops a running watcher and waits for Watch to return. Stopping a
// watcher that never started releases it.
func (fw *FileWatcher) Stop() {
	fw.mu.Lock()
	if !fw.started {
		fw.started = true
		fw.mu.Unlock()
		_ = fw.watcher.Close()
		return
	}
	if !fw.running {
		fw.mu.Unlock()
		return
	}
	fw.running = false
	fw.mu.Unlock()

	close(fw.stopCh)
	<-fw.doneCh
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	// New directories inside a watched tree are not watched by fsnotify
	// until added explicitly.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !IsHidden(event.Name) || fw.config.IncludeHidden {
				if err := fw.addDirectory(event.Name); err != nil {
					fw.logger.Warn("Failed to watch new directory", "path", event.Name, "error", err)
				}
			}
			return
		}
	}

	if !fw.shouldProcessEvent(event) {
		return
	}

	fw.logger.Debug("File event detected",
		"path", event.Name,
		"op", event.Op.String(),
	)
	fw.debounce.Add(event.Name)
}

// addPath adds a file or directory to the watcher.
func (fw *FileWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fw.addDirectory(path)
	}
	// Editors often replace a file instead of writing it, which drops a
	// watch on the file itself. Watch its directory and filter by name.
	fw.file = filepath.Clean(path)
	return fw.watcher.Add(filepath.Dir(path))
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (fw *FileWatcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && !fw.config.IncludeHidden && IsHidden(path) {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		fw.logger.Debug("Watching directory", "path", path)
		return nil
	})
}

// shouldProcessEvent determines if an event belongs in a batch.
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if fw.file != "" {
		return filepath.Clean(event.Name) == fw.file
	}
	return Matches(event.Name, fw.config.Extensions, fw.config.IncludeHidden)
}
