package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change is a single detected file change.
type Change struct {
	Path string
	CSS  bool
}

// Watcher polls a set of directories for modification-time changes.
// Polling keeps the tool portable; template trees are small enough that
// a short interval is cheap.
type Watcher struct {
	mu       sync.Mutex
	paths    []string
	interval time.Duration
	ignore   []string
	onChange func(Change)
	modTimes map[string]time.Time
	running  bool
	stopCh   chan struct{}
}

// DefaultIgnore lists file and directory names the watcher skips.
var DefaultIgnore = []string{".git", "node_modules", "*.tmp", "*.swp", "*~"}

func NewWatcher(paths []string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Watcher{
		paths:    paths,
		interval: interval,
		ignore:   DefaultIgnore,
		modTimes: make(map[string]time.Time),
	}
}

// OnChange registers the callback invoked for each detected change.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start blocks, polling until the context is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scan(nil) // seed mod times without reporting

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop ends the polling loop.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

func (w *Watcher) poll() {
	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()
	if fn == nil {
		return
	}

	var changes []Change
	w.scan(func(c Change) { changes = append(changes, c) })

	// Deleted files count as changes too
	w.mu.Lock()
	for p := range w.modTimes {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.modTimes, p)
			changes = append(changes, Change{Path: p, CSS: isCSS(p)})
		}
	}
	w.mu.Unlock()

	for _, c := range changes {
		fn(c)
	}
}

// scan walks the watched paths, updating mod times. report, when non-nil,
// is called for each file newer than its recorded time.
func (w *Watcher) scan(report func(Change)) {
	for _, root := range w.paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if w.ignored(p) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if info.IsDir() {
				return nil
			}

			w.mu.Lock()
			prev, seen := w.modTimes[p]
			w.modTimes[p] = info.ModTime()
			w.mu.Unlock()

			if report != nil && (!seen || info.ModTime().After(prev)) {
				report(Change{Path: p, CSS: isCSS(p)})
			}
			return nil
		})
	}
}

func (w *Watcher) ignored(fullPath string) bool {
	name := filepath.Base(fullPath)
	for _, pat := range w.ignore {
		if name == pat {
			return true
		}
		if matched, _ := filepath.Match(pat, name); matched {
			return true
		}
	}
	return false
}

func isCSS(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".css", ".scss", ".sass", ".less":
		return true
	}
	return false
}

// IsRunning reports whether the watcher loop is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
