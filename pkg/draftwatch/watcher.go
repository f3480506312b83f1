// Package draftwatch monitors a directory of raw complaint text files and
// re-runs structure recovery whenever one changes, handing the structured
// document to a callback. Editors save repeatedly while drafting, so
// events are debounced per file before parsing.
package draftwatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/fsnotify.v1"

	"github.com/coolbeans/pleader/pkg/complaint"
)

// DefaultDebounce is the settle window between a file event and parsing.
const DefaultDebounce = 300 * time.Millisecond

// Handler receives the structured document parsed from a changed file.
type Handler func(path string, doc *complaint.Document)

// Watcher watches a directory for complaint text changes.
type Watcher struct {
	dir        string
	debounce   time.Duration
	heuristics complaint.HeuristicsConfig
	handler    Handler

	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	pendingMu sync.Mutex
	pending   map[string]*time.Timer
}

// Config holds watcher settings.
type Config struct {
	// Dir is the directory of .txt drafts to watch.
	Dir string `yaml:"dir"`

	// Debounce is the settle window; zero means DefaultDebounce.
	Debounce time.Duration `yaml:"debounce"`

	// Heuristics overrides the classifier's lookahead heuristics.
	Heuristics *complaint.HeuristicsConfig `yaml:"heuristics,omitempty"`
}

// New creates a watcher for the configured directory.
func New(config Config, handler Handler) (*Watcher, error) {
	if config.Dir == "" {
		return nil, fmt.Errorf("watch directory is required")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}

	debounce := config.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	heuristics := complaint.DefaultHeuristics()
	if config.Heuristics != nil {
		heuristics = *config.Heuristics
	}

	return &Watcher{
		dir:        config.Dir,
		debounce:   debounce,
		heuristics: heuristics,
		handler:    handler,
		pending:    make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. Existing .txt files in the directory are parsed
// once up front so the caller starts from a complete picture.
func (w *Watcher) Start() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("reading watch directory %s: %w", w.dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && isDraftFile(entry.Name()) {
			w.parseFile(filepath.Join(w.dir, entry.Name()))
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop(watcher, w.stopChan)

	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}
	return nil
}

// Stop ends watching and cancels pending debounce timers.
func (w *Watcher) Stop() {
	if w.stopChan != nil {
		close(w.stopChan)
		w.stopChan = nil
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}

	w.pendingMu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.pendingMu.Unlock()
}

// watchLoop handles file system events.
func (w *Watcher) watchLoop(watcher *fsnotify.Watcher, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isDraftFile(event.Name) {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				w.schedule(event.Name)
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; transient errors are not fatal.
		}
	}
}

// schedule (re)arms the debounce timer for a changed file.
func (w *Watcher) schedule(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.pendingMu.Lock()
		delete(w.pending, path)
		w.pendingMu.Unlock()
		w.parseFile(path)
	})
}

// parseFile runs structure recovery on one file and invokes the handler.
func (w *Watcher) parseFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	w.handler(path, complaint.FromRawTextWith(string(data), w.heuristics))
}

func isDraftFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".txt")
}
