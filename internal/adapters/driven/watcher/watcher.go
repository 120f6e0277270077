// Package watcher implements driven.FileWatcher using fsnotify.
// It recursively watches a directory, skips tool and VCS directories, and
// debounces rapid events since editors often write a file several times
// per save.
package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DebounceInterval is the minimum time between two callbacks for one path.
const DebounceInterval = 50 * time.Millisecond

// Directories to ignore when watching.
var ignoreDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".termstat":    true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	".idea":        true,
	".vscode":      true,
}

// Suffixes of editor and OS scratch files.
var ignoreSuffixes = []string{
	".swp",
	".swx",
	".tmp",
	"~",
	".DS_Store",
}

// ErrStopped is returned by Watch after Stop.
var ErrStopped = errors.New("watcher stopped")

// Watcher implements driven.FileWatcher.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// New creates a new file system watcher.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring root recursively.
// onChange must not call Stop.
func (w *Watcher) Watch(root string, onChange func(path string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "watch", Path: absRoot, Err: errors.New("not a directory")}
	}

	if err := w.addTree(absRoot); err != nil {
		return err
	}

	w.wg.Add(1)
	go w.loop(onChange)
	return nil
}

// Stop ends monitoring and waits for in-flight callbacks.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

// WatchList returns the directories currently watched.
func (w *Watcher) WatchList() []string {
	return w.fw.WatchList()
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && shouldIgnoreDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fw.Add(path)
	})
}

func (w *Watcher) loop(onChange func(path string)) {
	defer w.wg.Done()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			path := event.Name

			// New directories are watched as they appear.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(path); err == nil && info.IsDir() {
					if !shouldIgnoreDir(info.Name()) {
						if err := w.addTree(path); err != nil {
							logger.Warn("watching %s: %v", path, err)
						}
					}
					continue
				}
			}

			if shouldIgnorePath(path) || !relevant(event) {
				continue
			}

			now := time.Now()
			if prev, seen := last[path]; seen && now.Sub(prev) < DebounceInterval {
				continue
			}
			last[path] = now

			select {
			case <-w.done:
				return
			default:
			}
			onChange(path)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func shouldIgnoreDir(name string) bool {
	return ignoreDirs[name]
}

// shouldIgnorePath reports whether a change to path should not fire.
func shouldIgnorePath(path string) bool {
	base := filepath.Base(path)
	for _, suffix := range ignoreSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	for _, part := range strings.Split(filepath.Dir(path), string(filepath.Separator)) {
		if ignoreDirs[part] {
			return true
		}
	}
	return false
}
