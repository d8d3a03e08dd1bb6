// Package droppaths normalizes file paths arriving from drag-and-drop
// payloads or terminal paste: file:// URIs, percent escapes, quoted paths
// with spaces, and ~ expansion.
package droppaths

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

var windowsDrivePrefix = regexp.MustCompile(`^/[A-Za-z]:`)

// Normalize cleans a single dropped path token into an absolute path.
func Normalize(token string) string {
	p := strings.TrimSpace(token)

	if u, err := url.Parse(p); err == nil && u.Scheme == "file" {
		// url.Parse already decodes percent escapes in the path
		p = u.Path
		// file:///C:/... parses to /C:/... on Windows
		if runtime.GOOS == "windows" && windowsDrivePrefix.MatchString(p) {
			p = strings.TrimLeft(p, "/")
		}
	} else if unescaped, err := url.PathUnescape(p); err == nil {
		// Percent-escaped path pasted without the file:// scheme
		p = unescaped
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// Parse splits a pasted line of paths into normalized absolute paths.
// Quoting is honored so paths with spaces survive intact.
func Parse(line string) []string {
	tokens := splitQuoted(line)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Normalize(tok))
	}
	return out
}

// splitQuoted splits on whitespace while honoring single and double quotes.
func splitQuoted(line string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()
	return tokens
}
