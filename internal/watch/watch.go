// Package watch observes a single node's payload and info files for
// changes, debounced, with a polling fallback when fsnotify is unavailable.
// Grounded on the teacher's FileWatcher (cmd/bd/daemon_watcher.go), narrowed
// from a whole-repository JSONL/git watcher to frame's single current node.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// NodeWatcher notifies onChanged (debounced) whenever the watched node
// directory's payload or info file changes.
type NodeWatcher struct {
	watcher     *fsnotify.Watcher
	pollingMode bool
	dir         string
	interval    time.Duration
	debounce    time.Duration

	mu        sync.Mutex
	lastFired time.Time
	timer     *time.Timer
}

// New creates a watcher over dir (a node's filesystem directory). onChanged
// is invoked, debounced by 300ms, after any change settles.
func New(dir string, onChanged func()) (*NodeWatcher, error) {
	nw := &NodeWatcher{dir: dir, interval: 2 * time.Second, debounce: 300 * time.Millisecond}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: fsnotify unavailable (%v), falling back to polling\n", err)
		nw.pollingMode = true
		return nw, nil
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		fmt.Fprintf(os.Stderr, "warning: could not watch %s (%v), falling back to polling\n", dir, err)
		nw.pollingMode = true
		return nw, nil
	}
	nw.watcher = w

	nw.timer = time.AfterFunc(0, func() {}) // placeholder, replaced on first event
	nw.timer.Stop()

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				_ = ev
				nw.scheduleFire(onChanged)
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nw, nil
}

func (nw *NodeWatcher) scheduleFire(onChanged func()) {
	nw.mu.Lock()
	defer nw.mu.Unlock()
	if nw.timer != nil {
		nw.timer.Stop()
	}
	nw.timer = time.AfterFunc(nw.debounce, onChanged)
}

// Run blocks, polling if fsnotify isn't active, until ctx is canceled.
func (nw *NodeWatcher) Run(ctx context.Context, onChanged func()) {
	if !nw.pollingMode {
		<-ctx.Done()
		nw.Close()
		return
	}

	var lastMod time.Time
	ticker := time.NewTicker(nw.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var newest time.Time
			for _, name := range []string{"payload", "info"} {
				info, err := os.Stat(filepath.Join(nw.dir, name))
				if err == nil && info.ModTime().After(newest) {
					newest = info.ModTime()
				}
			}
			if newest.After(lastMod) {
				lastMod = newest
				onChanged()
			}
		}
	}
}

// Close releases the fsnotify watcher, if any.
func (nw *NodeWatcher) Close() error {
	if nw.watcher != nil {
		return nw.watcher.Close()
	}
	return nil
}
