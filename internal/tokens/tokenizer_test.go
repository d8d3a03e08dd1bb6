package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tok, err := New(DefaultModel)
	if err != nil {
		// Encodings are fetched on first use; offline environments can't load them
		t.Skipf("tokenizer unavailable: %v", err)
	}
	require.True(t, tok.Available())
	return tok
}

func TestCountFixedPoint(t *testing.T) {
	tok := newTokenizer(t)

	// Regression anchor: "hello world" is two tokens ("hello", " world")
	// in both o200k_base and cl100k_base.
	assert.Equal(t, 2, tok.Count("hello world"))
	assert.Equal(t, 0, tok.Count(""))
}

func TestCountMonotonic(t *testing.T) {
	tok := newTokenizer(t)

	short := tok.Count("package main")
	long := tok.Count("package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n")
	assert.Greater(t, long, short)
	assert.Greater(t, short, 0)
}

func TestNilTokenizer(t *testing.T) {
	var tok *Tokenizer
	assert.Equal(t, 0, tok.Count("anything"))
	assert.Equal(t, "", tok.Model())
	assert.False(t, tok.Available())
}

func TestUnknownModelFallsBack(t *testing.T) {
	tok, err := New("definitely-not-a-model")
	if err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}
	assert.True(t, tok.Available())
	assert.Equal(t, "definitely-not-a-model", tok.Model())
	assert.Greater(t, tok.Count("hello world"), 0)
}
