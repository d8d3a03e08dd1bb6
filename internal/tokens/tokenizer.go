// Package tokens wraps tiktoken for approximate token counting.
// Counts are informational only and never affect the assembled payload.
package tokens

import (
	tiktoken "github.com/pkoukk/tiktoken-go"

	"clipboarder/internal/errors"
	"clipboarder/internal/log"
)

// DefaultModel is the model whose encoding is used when none is configured.
const DefaultModel = "gpt-4o"

// FallbackEncoding is used when the model's encoding cannot be resolved.
const FallbackEncoding = "cl100k_base"

// Tokenizer wraps a tiktoken encoding.
type Tokenizer struct {
	enc   *tiktoken.Tiktoken
	model string
}

// New creates a Tokenizer for the given model, falling back to the
// cl100k_base encoding when the model is unknown.
func New(model string) (*Tokenizer, error) {
	if model == "" {
		model = DefaultModel
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		log.Warnf("No encoding for model %s, falling back to %s: %v", model, FallbackEncoding, err)
		enc, err = tiktoken.GetEncoding(FallbackEncoding)
		if err != nil {
			return nil, errors.Wrapf(err, "tokenizer: get encoding %s", FallbackEncoding)
		}
	}

	return &Tokenizer{enc: enc, model: model}, nil
}

// Count returns the approximate number of tokens in s.
// A nil Tokenizer counts zero, so token display degrades gracefully
// when no encoding could be loaded.
func (t *Tokenizer) Count(s string) int {
	if t == nil || t.enc == nil {
		return 0
	}
	return len(t.enc.Encode(s, nil, nil))
}

// Model returns the model name this tokenizer was created for.
func (t *Tokenizer) Model() string {
	if t == nil {
		return ""
	}
	return t.model
}

// Available reports whether token counting is usable.
func (t *Tokenizer) Available() bool {
	return t != nil && t.enc != nil
}
