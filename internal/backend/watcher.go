package backend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Kind names the local state that changed.
type Kind int

const (
	// KindPackages means the package log changed: something was installed,
	// removed or upgraded.
	KindPackages Kind = iota
	// KindBlacklist means the blacklist file changed.
	KindBlacklist
)

func (k Kind) String() string {
	if k == KindBlacklist {
		return "blacklist"
	}
	return "packages"
}

// Event reports a change, or a watcher error.
type Event struct {
	Kind Kind
	Path string
	Err  error
}

// Watcher turns filesystem notifications on the package log and the
// blacklist into debounced refresh events.
type Watcher struct {
	logDir    string
	blacklist string
	interval  time.Duration

	fs *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches logDir and the directory holding blacklistFile. Paths
// that do not exist are skipped. Bursts of changes within interval collapse
// into one event per kind.
func NewWatcher(logDir, blacklistFile string, interval time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		logDir:   cleanOrEmpty(logDir),
		interval: interval,
		fs:       fw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	if blacklistFile != "" {
		w.blacklist = filepath.Clean(blacklistFile)
	}
	for _, dir := range w.dirs() {
		if err := fw.Add(dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			cancel()
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

func cleanOrEmpty(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

func (w *Watcher) dirs() []string {
	var dirs []string
	if w.logDir != "" {
		dirs = append(dirs, w.logDir)
	}
	if w.blacklist != "" {
		parent := filepath.Dir(w.blacklist)
		if parent != w.logDir {
			if _, err := os.Stat(parent); err == nil {
				dirs = append(dirs, parent)
			}
		}
	}
	return dirs
}

// Events returns the change stream. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine exits and Events is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) classify(path string) (Kind, bool) {
	path = filepath.Clean(path)
	switch {
	case w.blacklist != "" && path == w.blacklist:
		return KindBlacklist, true
	case w.logDir != "" && filepath.Dir(path) == w.logDir:
		return KindPackages, true
	}
	return 0, false
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	limit := newThrottle(w.interval)
	pending := map[Kind]string{}
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	armed := false

	send := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			debounce.Stop()
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Backend.Error("watcher", err)
			if !send(Event{Err: err}) {
				return
			}
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			kind, ok := w.classify(evt.Name)
			if !ok {
				continue
			}
			events.Backend.Change(evt.Name, evt.Op.String())
			pending[kind] = evt.Name
			if !armed {
				debounce.Reset(w.interval)
				armed = true
			}
		case <-debounce.C:
			armed = false
			if !limit.wait(w.ctx) {
				return
			}
			for _, kind := range []Kind{KindPackages, KindBlacklist} {
				path, ok := pending[kind]
				if !ok {
					continue
				}
				delete(pending, kind)
				if !send(Event{Kind: kind, Path: path}) {
					return
				}
			}
		}
	}
}
