// Package watch monitors staged files and triggers a recompile-and-recopy
// when any of them change on disk.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"clipboarder/internal/errors"
	"clipboarder/internal/log"
)

// Status reports the watcher's current state.
type Status struct {
	Running      bool      // Whether the watcher is currently active
	Files        []string  // Staged files being watched
	Recopies     int       // Number of recompiles triggered so far
	LastActivity time.Time // Time of the last triggered recompile
}

// Watcher monitors the parent directories of staged files using fsnotify
// and invokes a callback after changes settle.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration

	// Callback invoked with the staged file list after a debounced change
	onChange func(paths []string)

	// Channel to signal stop
	stopChan chan struct{}

	// Lock for running state, staged set, and stats
	mutex sync.RWMutex

	staged []string
	member map[string]bool
	dirs   map[string]bool

	running      bool
	recopies     int
	lastActivity time.Time
}

// New creates a watcher that waits for the given quiet period before
// reporting a change.
func New(debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		debounce:  debounce,
		stopChan:  make(chan struct{}),
		member:    make(map[string]bool),
		dirs:      make(map[string]bool),
	}, nil
}

// SetCallback registers the function invoked with the staged file list
// when a debounced change fires.
func (w *Watcher) SetCallback(fn func(paths []string)) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.onChange = fn
}

// AddFile stages a file for watching. Its parent directory is registered
// with fsnotify; editors that replace files on save still produce events.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.NewFileError("invalid file path", path, errors.InvalidPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return errors.NewFileError("cannot access file", abs, errors.FileNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return errors.NewFileError("not a regular file", abs, errors.NotRegularFile, nil)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.member[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.fsWatcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch directory %s", dir)
		}
		w.dirs[dir] = true
	}

	w.member[abs] = true
	w.staged = append(w.staged, abs)
	log.LogWithFields(log.F("file", abs)).Info("Watching file")
	return nil
}

// Files returns a copy of the staged file list in order.
func (w *Watcher) Files() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	out := make([]string, len(w.staged))
	copy(out, w.staged)
	return out
}

// Start begins processing file events in a background goroutine.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		return errors.New("watcher is already running")
	}
	if len(w.staged) == 0 {
		return errors.New("no files to watch")
	}

	w.running = true
	go w.loop()
	return nil
}

// Stop halts event processing.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		w.running = false
		close(w.stopChan)
	}
	// fsnotify tolerates closing an already-closed watcher
	if err := w.fsWatcher.Close(); err != nil {
		log.Warnf("Error closing fsnotify watcher: %v", err)
	}
}

// Status returns a snapshot of the watcher state.
func (w *Watcher) Status() Status {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	files := make([]string, len(w.staged))
	copy(files, w.staged)
	return Status{
		Running:      w.running,
		Files:        files,
		Recopies:     w.recopies,
		LastActivity: w.lastActivity,
	}
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			log.Debugf("Change detected: %s (%s)", event.Name, event.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.fire()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Watcher error: %v", err)

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant reports whether an event touches a staged file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.member[filepath.Clean(event.Name)]
}

func (w *Watcher) fire() {
	w.mutex.Lock()
	cb := w.onChange
	w.recopies++
	w.lastActivity = time.Now()
	files := make([]string, len(w.staged))
	copy(files, w.staged)
	w.mutex.Unlock()

	if cb != nil {
		cb(files)
	}
}
