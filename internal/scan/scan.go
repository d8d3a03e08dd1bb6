// Package scan walks folders recursively and collects files by extension
// or glob pattern for compilation.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"clipboarder/internal/errors"
	"clipboarder/internal/log"
)

// Pair binds a folder to the extension (or glob pattern) collected from it.
type Pair struct {
	Folder string
	Ext    string
}

// NormalizeExt ensures an extension starts with a dot. Glob patterns are
// returned unchanged.
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || isGlobPattern(ext) || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// matcherFor builds a filename predicate for an extension or glob pattern.
func matcherFor(ext string) (func(name string) bool, error) {
	if isGlobPattern(ext) {
		g, err := glob.Compile(ext)
		if err != nil {
			return nil, errors.NewPatternError("invalid file pattern", ext, err)
		}
		return g.Match, nil
	}
	suffix := NormalizeExt(ext)
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}, nil
}

// Collect walks each pair's folder recursively and returns the sorted list
// of matching file paths across all pairs.
func Collect(pairs []Pair) ([]string, error) {
	var all []string

	for _, pair := range pairs {
		if pair.Ext == "" {
			return nil, errors.NewPatternError("extension is required", "", nil)
		}
		info, err := os.Stat(pair.Folder)
		if err != nil {
			return nil, errors.NewFileError("cannot access folder", pair.Folder, errors.FileNotFound, err)
		}
		if !info.IsDir() {
			return nil, errors.NewFileError("not a directory", pair.Folder, errors.InvalidPath, nil)
		}

		match, err := matcherFor(pair.Ext)
		if err != nil {
			return nil, err
		}

		err = filepath.WalkDir(pair.Folder, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Unreadable subdirectories are logged and skipped, not fatal
				log.Warnf("Skipping %s during scan: %v", path, walkErr)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if match(d.Name()) {
				all = append(all, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "scanning %s", pair.Folder)
		}
	}

	sort.Strings(all)
	return all, nil
}
