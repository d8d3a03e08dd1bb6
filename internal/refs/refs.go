// Package refs searches source trees for references to a symbol and
// produces copy-ready snippets with surrounding context.
package refs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"clipboarder/internal/errors"
	"clipboarder/internal/log"
)

// Options control the reference search.
type Options struct {
	Before    int    // Lines of context before a match
	After     int    // Lines of context after a match
	Extension string // File extension searched (e.g. ".cs")
}

// DefaultOptions returns the classic 3-lines-each-way C# search.
func DefaultOptions() Options {
	return Options{Before: 3, After: 3, Extension: ".cs"}
}

// Snippet is one match with its context block, ready to copy.
type Snippet struct {
	Path string // Path relative to the search root
	Line int    // 1-based line number of the match
	Text string // Rendered context block
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// AutoPattern turns plain user text into a practical search regex.
// Bare identifiers become word-bounded; anything containing regex
// metacharacters is trusted as-is; everything else is quoted literally.
func AutoPattern(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	if identifierRe.MatchString(s) {
		return `\b` + s + `\b`
	}
	if strings.ContainsAny(s, `.*+?[]{}|()^$\`) {
		return s
	}
	return regexp.QuoteMeta(s)
}

// Find walks files with the configured extension under root and returns a
// snippet for every line matching pattern.
func Find(root, pattern string, opts Options) ([]Snippet, error) {
	if pattern == "" {
		return nil, errors.NewPatternError("search pattern is required", "", nil)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.NewPatternError("invalid regex", pattern, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.NewFileError("cannot access folder", root, errors.FileNotFound, err)
	}
	if !info.IsDir() {
		return nil, errors.NewFileError("not a directory", root, errors.InvalidPath, nil)
	}

	ext := strings.ToLower(opts.Extension)
	if ext == "" {
		ext = ".cs"
	}

	var snippets []Snippet
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Warnf("Skipping %s during reference search: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("Skipping unreadable file %s: %v", path, err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		lines := strings.Split(string(data), "\n")
		for idx, line := range lines {
			if !re.MatchString(line) {
				continue
			}
			snippets = append(snippets, Snippet{
				Path: rel,
				Line: idx + 1,
				Text: renderSnippet(rel, lines, idx, opts.Before, opts.After),
			})
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "searching %s", root)
	}

	return snippets, nil
}

// renderSnippet formats one match with context:
//
//	================================================================================
//	relative/path/File.cs (line 47):
//	     44:    ...
//	>>   47:    matching line
//	     48:    ...
func renderSnippet(rel string, lines []string, idx, before, after int) string {
	start := idx - before
	if start < 0 {
		start = 0
	}
	end := idx + after + 1
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s (line %d):\n", rel, idx+1))
	for i := start; i < end; i++ {
		prefix := "  "
		if i == idx {
			prefix = ">>"
		}
		sb.WriteString(fmt.Sprintf("%s %4d: %s\n", prefix, i+1, strings.TrimRight(lines[i], " \t\r")))
	}
	return sb.String()
}

// Combine joins snippets into a single clipboard payload.
func Combine(snippets []Snippet) string {
	parts := make([]string, len(snippets))
	for i, s := range snippets {
		parts[i] = s.Text
	}
	return strings.Join(parts, "\n")
}
