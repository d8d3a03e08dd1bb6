package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test Is through the chain
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(Wrap(wrappedErr, "deeper"), origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot read", "/path/to/file", FileUnreadable, nil)
	assert.Equal(t, "cannot read: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileUnreadable, fileErr.Kind())
	assert.True(t, IsFileUnreadable(fileErr))
	assert.False(t, IsFileNotFound(fileErr))

	// Test with wrapped error
	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot read", "/path/to/file", FileUnreadable, origErr)
	assert.Equal(t, "cannot read: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	notFound := NewFileError("file not found", "a.txt", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFound))
}

func TestEmptySelection(t *testing.T) {
	assert.True(t, IsEmptySelection(ErrEmptySelection))
	assert.Equal(t, "no files selected", ErrEmptySelection.Error())

	// Still detected through wrapping, even when the wrapper's own kind
	// is Unknown and sits above the sentinel in the chain
	assert.True(t, IsEmptySelection(Wrap(ErrEmptySelection, "compile failed")))
	assert.True(t, IsEmptySelection(Wrapf(Wrap(ErrEmptySelection, "inner"), "outer %d", 2)))

	assert.False(t, IsEmptySelection(New("something else")))
	assert.False(t, IsEmptySelection(Wrap(New("something else"), "outer")))
}

func TestClipboardError(t *testing.T) {
	clipErr := NewClipboardError("failed to copy to clipboard", ClipboardWriteFailed, fmt.Errorf("xclip missing"))
	assert.True(t, IsClipboardError(clipErr))
	assert.Equal(t, ClipboardWriteFailed, clipErr.Kind())
	assert.Contains(t, clipErr.Error(), "xclip missing")

	unavailable := NewClipboardError("clipboard unavailable", ClipboardUnavailable, nil)
	assert.True(t, IsClipboardError(unavailable))
	assert.Equal(t, ClipboardUnavailable, unavailable.Kind())
}

func TestPatternError(t *testing.T) {
	patErr := NewPatternError("invalid regex", "[unclosed", fmt.Errorf("missing closing ]"))
	assert.True(t, IsInvalidPattern(patErr))
	assert.Equal(t, "[unclosed", patErr.Pattern())
	assert.Contains(t, patErr.Error(), "[unclosed")
}

func TestConfigError(t *testing.T) {
	cfgErr := NewConfigError("invalid configuration", "on_unreadable", InvalidConfig, nil)
	assert.True(t, IsInvalidConfig(cfgErr))
	assert.Equal(t, "on_unreadable", cfgErr.Param())
	assert.Equal(t, "invalid configuration: on_unreadable", cfgErr.Error())
}
