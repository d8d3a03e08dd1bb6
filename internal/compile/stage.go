package compile

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"clipboarder/internal/log"
)

// Stage is the ordered, deduplicated list of files queued for compilation.
// Order reflects drop/selection order. Safe for concurrent use; the watch
// mode recompiles from a background goroutine.
type Stage struct {
	mutex sync.RWMutex
	paths []string
	seen  map[string]bool
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{seen: make(map[string]bool)}
}

// Add appends paths that are readable regular files, preserving order and
// ignoring duplicates. Returns how many were added and how many skipped.
func (s *Stage) Add(paths ...string) (added, skipped int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			log.Debugf("Ignoring path %q: %v", p, err)
			skipped++
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.Mode().IsRegular() {
			skipped++
			continue
		}
		if s.seen[abs] {
			skipped++
			continue
		}
		s.seen[abs] = true
		s.paths = append(s.paths, abs)
		added++
	}
	return added, skipped
}

// Remove deletes the entries at the given zero-based indices.
// Out-of-range indices are ignored.
func (s *Stage) Remove(indices ...int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Delete from the end so earlier indices stay valid. Duplicates are
	// skipped; after sorting they sit next to each other
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	prev := -1
	for _, i := range sorted {
		if i == prev || i < 0 || i >= len(s.paths) {
			continue
		}
		prev = i
		delete(s.seen, s.paths[i])
		s.paths = append(s.paths[:i], s.paths[i+1:]...)
	}
}

// Clear empties the stage.
func (s *Stage) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.paths = nil
	s.seen = make(map[string]bool)
}

// Paths returns a copy of the staged paths in order.
func (s *Stage) Paths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of staged files.
func (s *Stage) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.paths)
}
