package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipboarder/internal/errors"
)

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"main.go":               "package main",
		"readme.md":             "# readme",
		"sub/util.go":           "package sub",
		"sub/deep/deep.go":      "package deep",
		"sub/deep/notes.txt":    "notes",
		"other/handler.py":      "pass",
		"other/handler_test.py": "pass",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestCollectByExtension(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect([]Pair{{Folder: dir, Ext: ".go"}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "main.go"),
		filepath.Join(dir, "sub", "deep", "deep.go"),
		filepath.Join(dir, "sub", "util.go"),
	}, files)
}

func TestCollectDotlessExtension(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect([]Pair{{Folder: dir, Ext: "md"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "readme.md")}, files)
}

func TestCollectMultiplePairs(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect([]Pair{
		{Folder: filepath.Join(dir, "sub"), Ext: ".go"},
		{Folder: filepath.Join(dir, "other"), Ext: ".py"},
	})
	require.NoError(t, err)
	require.Len(t, files, 4)

	// Combined result is sorted
	assert.IsIncreasing(t, files)
}

func TestCollectGlobPattern(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect([]Pair{{Folder: dir, Ext: "*.{go,md}"}})
	require.NoError(t, err)
	require.Len(t, files, 4)
	assert.Contains(t, files, filepath.Join(dir, "readme.md"))
	assert.Contains(t, files, filepath.Join(dir, "main.go"))
}

func TestCollectMissingFolder(t *testing.T) {
	_, err := Collect([]Pair{{Folder: filepath.Join(t.TempDir(), "nope"), Ext: ".go"}})
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestCollectFolderIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Collect([]Pair{{Folder: file, Ext: ".go"}})
	require.Error(t, err)
}

func TestCollectInvalidGlob(t *testing.T) {
	dir := t.TempDir()
	// An unterminated character class is rejected at compile time;
	// unbalanced braces are not, glob treats them as literals
	_, err := Collect([]Pair{{Folder: dir, Ext: "[unclosed"}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPattern(err))
}

func TestCollectEmptyExtension(t *testing.T) {
	dir := t.TempDir()
	_, err := Collect([]Pair{{Folder: dir, Ext: ""}})
	require.Error(t, err)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".go", NormalizeExt("go"))
	assert.Equal(t, ".go", NormalizeExt(".go"))
	assert.Equal(t, ".go", NormalizeExt(" go "))
	assert.Equal(t, "*.{go,md}", NormalizeExt("*.{go,md}"))
	assert.Equal(t, "", NormalizeExt(""))
}
