package scenes

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultWatchExts are the file kinds that feed a scene rebuild: spec YAML
// and behavior scripts.
var defaultWatchExts = []string{".yaml", ".yml", ".tengo"}

const defaultDebounce = 100 * time.Millisecond

// Watcher reports changed scene files so callers can rebuild the active scene
// without restarting. Bursts of events for one path inside the debounce
// window collapse into a single report.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	exts     map[string]struct{}
	events   chan string
	errs     chan error
	once     sync.Once
	closeErr error
}

// NewWatcher watches dirs for changes to scene specs and scripts, with the
// default extension set and debounce window.
func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherWith(defaultDebounce, defaultWatchExts, dirs...)
}

// NewWatcherWith watches dirs for changes to files carrying one of the given
// extensions (compared case-insensitively). A non-positive debounce falls
// back to the default window.
func NewWatcherWith(debounce time.Duration, exts []string, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		exts:     make(map[string]struct{}, len(exts)),
		events:   make(chan string, 16),
		errs:     make(chan error, 1),
	}
	for _, ext := range exts {
		w.exts[strings.ToLower(ext)] = struct{}{}
	}
	go w.run()
	return w, nil
}

// Events yields the paths of changed files, one per debounce window.
// The channel closes once Close has been called and the loop drained.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors yields failures from the underlying filesystem watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. The event and error channels are closed by the
// delivery loop after it drains, never here, so a concurrent reader can
// finish ranging without racing a send.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}

func (w *Watcher) run() {
	defer close(w.errs)
	defer close(w.events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.watches(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.events <- event.Name:
			default:
				// Reader stalled with a full buffer; the next write to the
				// file will produce a fresh event.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) watches(path string) bool {
	_, ok := w.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}
