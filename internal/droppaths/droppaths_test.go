package droppaths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFileURI(t *testing.T) {
	assert.Equal(t, "/tmp/example.txt", Normalize("file:///tmp/example.txt"))
	assert.Equal(t, "/tmp/with space.txt", Normalize("file:///tmp/with%20space.txt"))
}

func TestNormalizePercentEscapes(t *testing.T) {
	// Percent-escaped path without the file:// scheme
	assert.Equal(t, "/tmp/with space.txt", Normalize("/tmp/with%20space.txt"))
}

func TestNormalizeTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes.txt"), Normalize("~/notes.txt"))
	assert.Equal(t, home, Normalize("~"))
}

func TestNormalizeRelative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "a.txt"), Normalize("a.txt"))
	assert.Equal(t, filepath.Join(wd, "a.txt"), Normalize("  a.txt  "))
}

func TestParseMultiple(t *testing.T) {
	paths := Parse("/tmp/a.txt /tmp/b.txt")
	assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.txt"}, paths)
}

func TestParseQuoted(t *testing.T) {
	paths := Parse(`"/tmp/has space.txt" '/tmp/other file.txt' /tmp/plain.txt`)
	assert.Equal(t, []string{
		"/tmp/has space.txt",
		"/tmp/other file.txt",
		"/tmp/plain.txt",
	}, paths)
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   \t  "))
}
