package compile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageAdd(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")

	s := NewStage()
	added, skipped := s.Add(a, b)
	assert.Equal(t, 2, added)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 2, s.Len())

	// Order reflects add order
	assert.Equal(t, []string{a, b}, s.Paths())
}

func TestStageAddDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")

	s := NewStage()
	s.Add(a)
	added, skipped := s.Add(a)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, s.Len())
}

func TestStageAddRejectsNonFiles(t *testing.T) {
	dir := t.TempDir()

	s := NewStage()
	added, skipped := s.Add(dir, filepath.Join(dir, "missing.txt"))
	assert.Equal(t, 0, added)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 0, s.Len())
}

func TestStageRemove(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")
	c := writeFile(t, dir, "c.txt", "c")

	s := NewStage()
	s.Add(a, b, c)

	s.Remove(0, 2)
	assert.Equal(t, []string{b}, s.Paths())

	// Removed entries can be staged again
	added, _ := s.Add(a)
	assert.Equal(t, 1, added)

	// Out-of-range indices are ignored
	s.Remove(99, -1)
	assert.Equal(t, 2, s.Len())
}

func TestStageRemoveDuplicateIndices(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")
	c := writeFile(t, dir, "c.txt", "c")

	s := NewStage()
	s.Add(a, b, c)

	// Repeating an index must not remove the entry that shifts into it
	s.Remove(1, 1)
	assert.Equal(t, []string{a, c}, s.Paths())
}

func TestStageClear(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")

	s := NewStage()
	s.Add(a)
	s.Clear()
	require.Equal(t, 0, s.Len())

	added, _ := s.Add(a)
	assert.Equal(t, 1, added)
}

func TestStagePathsIsCopy(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")

	s := NewStage()
	s.Add(a, b)

	paths := s.Paths()
	paths[0] = "mutated"
	assert.Equal(t, []string{a, b}, s.Paths())
}
