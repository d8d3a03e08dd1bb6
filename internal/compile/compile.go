// Package compile turns an ordered list of files into a single annotated
// text payload ready for the clipboard.
package compile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clipboarder/internal/errors"
	"clipboarder/internal/log"
)

// UnreadablePolicy controls what happens when a staged file cannot be read.
type UnreadablePolicy string

const (
	// PolicyAnnotate embeds a warning section in the payload and continues.
	PolicyAnnotate UnreadablePolicy = "annotate"
	// PolicySkip omits the file from the payload and records it.
	PolicySkip UnreadablePolicy = "skip"
	// PolicyAbort fails the whole compile; nothing reaches the clipboard.
	PolicyAbort UnreadablePolicy = "abort"
)

// Options control how file contents are assembled.
type Options struct {
	Annotate        bool             // Prefix each section with a file header
	Separator       string           // Join string between sections
	StripEmptyLines bool             // Drop empty/whitespace-only lines from the result
	OnUnreadable    UnreadablePolicy // Unreadable-file policy
}

// DefaultOptions returns the classic annotated-output options.
func DefaultOptions() Options {
	return Options{
		Annotate:     true,
		Separator:    "\n\n",
		OnUnreadable: PolicyAnnotate,
	}
}

// FileCount is the informational token count for one staged file.
type FileCount struct {
	Path   string
	Tokens int
}

// Payload is the result of compiling staged files.
type Payload struct {
	Text        string      // The combined text delivered to the clipboard
	Files       []FileCount // Per-file token counts (zero when counting is disabled)
	TotalTokens int         // Token count of Text (zero when counting is disabled)
	Skipped     []string    // Paths omitted under PolicySkip
}

// Header returns the annotation line placed before a file's content.
func Header(path string) string {
	return fmt.Sprintf("# ===== File: %s =====\n", filepath.Base(path))
}

// Compile reads each file in order and joins the sections with the
// configured separator. File order is preserved exactly as given.
func Compile(paths []string, opts Options, counter TokenCounter) (*Payload, error) {
	if len(paths) == 0 {
		return nil, errors.ErrEmptySelection
	}
	if opts.Separator == "" {
		opts.Separator = "\n\n"
	}
	if opts.OnUnreadable == "" {
		opts.OnUnreadable = PolicyAnnotate
	}

	payload := &Payload{}
	sections := make([]string, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			switch opts.OnUnreadable {
			case PolicySkip:
				log.Warnf("Skipping unreadable file %s: %v", path, err)
				payload.Skipped = append(payload.Skipped, path)
				continue
			case PolicyAbort:
				return nil, errors.NewFileError("cannot read file", path, errors.FileUnreadable, err)
			default:
				warning := fmt.Sprintf("[Warning: could not read '%s': %v]", path, err)
				if opts.Annotate {
					warning = Header(path) + warning
				}
				sections = append(sections, warning)
				payload.Files = append(payload.Files, FileCount{Path: path})
				continue
			}
		}

		content := string(data)
		section := content
		if opts.Annotate {
			section = Header(path) + content
		}
		sections = append(sections, section)

		count := 0
		if counter != nil {
			count = counter.Count(content)
		}
		payload.Files = append(payload.Files, FileCount{Path: path, Tokens: count})
	}

	if len(sections) == 0 {
		// Every file was skipped; nothing meaningful to copy
		return nil, errors.Wrap(errors.ErrEmptySelection, "all staged files were skipped")
	}

	payload.Text = strings.Join(sections, opts.Separator)
	if opts.StripEmptyLines {
		payload.Text = StripEmptyLines(payload.Text)
	}

	if counter != nil {
		payload.TotalTokens = counter.Count(payload.Text)
	}

	return payload, nil
}

// StripEmptyLines removes lines that are empty or whitespace-only.
func StripEmptyLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
