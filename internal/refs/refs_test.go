package refs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipboarder/internal/errors"
)

const sampleSource = `using System;

namespace Demo
{
    class SettingsManager
    {
        public void SetDisplay(int mode)
        {
            Console.WriteLine(mode);
        }
    }
}
`

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Program.cs"), []byte(sampleSource), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "Other.cs"), []byte("// SettingsManager used here\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("SettingsManager\n"), 0644))
	return dir
}

func TestFindMatches(t *testing.T) {
	dir := makeTree(t)

	snippets, err := Find(dir, `\bSettingsManager\b`, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, snippets, 2)

	// Only .cs files are searched
	for _, s := range snippets {
		assert.NotContains(t, s.Path, "ignored.txt")
	}
}

func TestSnippetFormat(t *testing.T) {
	dir := makeTree(t)

	snippets, err := Find(dir, `\bSetDisplay\b`, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, snippets, 1)

	s := snippets[0]
	assert.Equal(t, "Program.cs", s.Path)
	assert.Equal(t, 7, s.Line)
	assert.True(t, strings.HasPrefix(s.Text, strings.Repeat("=", 80)+"\n"))
	assert.Contains(t, s.Text, "Program.cs (line 7):")
	assert.Contains(t, s.Text, ">>    7:")
	// Context lines carry the plain prefix
	assert.Contains(t, s.Text, "      6:")
	assert.Contains(t, s.Text, "      8:")
}

func TestContextClampedAtFileEdges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Tiny.cs"), []byte("match here\n"), 0644))

	snippets, err := Find(dir, "match", Options{Before: 5, After: 5, Extension: ".cs"})
	require.NoError(t, err)
	require.Len(t, snippets, 1)

	// Only the single existing line appears; no out-of-range lines
	assert.Contains(t, snippets[0].Text, ">>    1: match here")
	assert.NotContains(t, snippets[0].Text, "   0:")
}

func TestFindCustomExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("func Organize() {}\n"), 0644))

	snippets, err := Find(dir, `\bOrganize\b`, Options{Before: 1, After: 1, Extension: ".go"})
	require.NoError(t, err)
	assert.Len(t, snippets, 1)
}

func TestFindInvalidRegex(t *testing.T) {
	_, err := Find(t.TempDir(), "[unclosed", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPattern(err))
}

func TestFindEmptyPattern(t *testing.T) {
	_, err := Find(t.TempDir(), "", DefaultOptions())
	require.Error(t, err)
}

func TestFindMissingRoot(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope"), "x", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestCombine(t *testing.T) {
	snippets := []Snippet{
		{Text: "first block\n"},
		{Text: "second block\n"},
	}
	assert.Equal(t, "first block\n\nsecond block\n", Combine(snippets))
	assert.Equal(t, "", Combine(nil))
}

func TestAutoPattern(t *testing.T) {
	cases := map[string]string{
		"SettingsManager": `\bSettingsManager\b`,
		"  Trimmed  ":     `\bTrimmed\b`,
		"":                "",
		`\bAlready\b`:     `\bAlready\b`, // regex input passes through
		"SetDisplay(":     "SetDisplay(", // metacharacters trusted as-is
		"Namespace.Class": "Namespace.Class",
		"hello world":     `hello world`, // no metachars, quoted literal
	}
	for input, want := range cases {
		assert.Equal(t, want, AutoPattern(input), "input %q", input)
	}
}
