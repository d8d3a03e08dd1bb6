package compile

import (
	"strings"

	"clipboarder/internal/clipboard"
)

// TokenCounter reports the token count of a string.
// *tokens.Tokenizer satisfies this.
type TokenCounter interface {
	Count(s string) int
}

// SplitByTokens splits text on line boundaries so that no chunk exceeds
// maxTokens. A single line that is itself over the budget becomes its own
// chunk. With maxTokens <= 0 or no counter, the text is returned whole.
func SplitByTokens(text string, maxTokens int, counter TokenCounter) []string {
	if maxTokens <= 0 || counter == nil {
		return []string{text}
	}

	// SplitAfter keeps the newlines so rejoining chunks reproduces the input
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var chunks []string
	current := ""
	for _, line := range lines {
		if counter.Count(current+line) <= maxTokens {
			current += line
			continue
		}
		if current != "" {
			chunks = append(chunks, current)
		}
		if counter.Count(line) > maxTokens {
			// Oversized line: isolate it rather than splitting mid-line
			chunks = append(chunks, line)
			current = ""
		} else {
			current = line
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

// Deliver writes text to the clipboard, one chunk at a time when a token
// budget is set. pause is invoked after every chunk except the last, so the
// caller can let the user paste before the next chunk overwrites it.
// Returns the number of chunks written.
func Deliver(w clipboard.Writer, text string, maxTokens int, counter TokenCounter, pause func(chunk, total int)) (int, error) {
	chunks := SplitByTokens(text, maxTokens, counter)
	for i, chunk := range chunks {
		if err := w.Write(chunk); err != nil {
			return i, err
		}
		if pause != nil && i < len(chunks)-1 {
			pause(i+1, len(chunks))
		}
	}
	return len(chunks), nil
}
