package compile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipboarder/internal/errors"
)

// fakeWriter records clipboard writes.
type fakeWriter struct {
	writes []string
	fail   bool
}

func (f *fakeWriter) Write(text string) error {
	if f.fail {
		return errors.NewClipboardError("failed to copy to clipboard", errors.ClipboardWriteFailed, nil)
	}
	f.writes = append(f.writes, text)
	return nil
}

func TestSplitByTokensNoBudget(t *testing.T) {
	text := "line one\nline two\n"
	assert.Equal(t, []string{text}, SplitByTokens(text, 0, wordCounter{}))
	assert.Equal(t, []string{text}, SplitByTokens(text, -5, wordCounter{}))
	assert.Equal(t, []string{text}, SplitByTokens(text, 3, nil))
}

func TestSplitByTokensBudget(t *testing.T) {
	text := "one two\nthree four\nfive six\n"
	chunks := SplitByTokens(text, 4, wordCounter{})

	require.Equal(t, []string{"one two\nthree four\n", "five six\n"}, chunks)

	// No chunk exceeds the budget
	for _, c := range chunks {
		assert.LessOrEqual(t, wordCounter{}.Count(c), 4)
	}

	// Concatenating chunks reproduces the input
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitByTokensOversizedLine(t *testing.T) {
	text := "small\none two three four five six\nsmall again\n"
	chunks := SplitByTokens(text, 2, wordCounter{})

	require.Len(t, chunks, 3)
	assert.Equal(t, "small\n", chunks[0])
	// The oversized line stands alone rather than being split mid-line
	assert.Equal(t, "one two three four five six\n", chunks[1])
	assert.Equal(t, "small again\n", chunks[2])
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitByTokensNoTrailingNewline(t *testing.T) {
	text := "one two\nthree four"
	chunks := SplitByTokens(text, 2, wordCounter{})
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitByTokensEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, SplitByTokens("", 10, wordCounter{}))
}

func TestDeliverSingleChunk(t *testing.T) {
	w := &fakeWriter{}
	n, err := Deliver(w, "hello world", 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"hello world"}, w.writes)
}

func TestDeliverChunked(t *testing.T) {
	w := &fakeWriter{}
	var pauses []int

	text := "one two\nthree four\nfive six\n"
	n, err := Deliver(w, text, 4, wordCounter{}, func(chunk, total int) {
		pauses = append(pauses, chunk)
		assert.Equal(t, 2, total)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, w.writes, 2)

	// Pause fires between chunks, not after the last one
	assert.Equal(t, []int{1}, pauses)
	assert.Equal(t, text, strings.Join(w.writes, ""))
}

func TestDeliverWriteFailure(t *testing.T) {
	w := &fakeWriter{fail: true}
	_, err := Deliver(w, "text", 0, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsClipboardError(err))
}
