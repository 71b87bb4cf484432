package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration whenever the backing file changes.
// Sessions started after a reload pick up the new values; running
// sessions keep the options they were created with.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *log.Logger
	done    chan struct{}

	mu  sync.RWMutex
	cfg Config
}

// NewWatcher loads path and starts watching it for changes.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	// Watch the directory rather than the file: editors replace the file
	// on save, which silently drops a watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fsw,
		logger:  logger,
		done:    make(chan struct{}),
		cfg:     cfg,
	}
	go w.loop()
	return w, nil
}

// Latest returns the most recently loaded configuration.
func (w *Watcher) Latest() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// Close stops watching. Latest keeps returning the last loaded value.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Config watcher error", "error", err)
		}
	}
}

// reload swaps in the changed file, keeping the previous config when the
// new one does not load or would not start a session.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = reloadable(cfg)
	}
	if err != nil {
		w.logger.Warn("Keeping previous config", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
	w.logger.Info("Config reloaded", "path", w.path)
}

// reloadable reports whether a freshly loaded config could start a
// session, so a broken edit never replaces a working one.
func reloadable(cfg Config) error {
	opts, err := cfg.ToOptions(0)
	if err != nil {
		return err
	}
	return opts.Validate()
}
