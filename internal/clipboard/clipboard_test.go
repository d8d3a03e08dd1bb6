package clipboard

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipboarder/internal/errors"
)

func TestFyneWriter(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := test.NewWindow(nil)
	defer w.Close()

	writer := NewFyne(w.Clipboard())
	require.NoError(t, writer.Write("hello\n---\nworld"))
	assert.Equal(t, "hello\n---\nworld", w.Clipboard().Content())

	// Overwrites prior contents
	require.NoError(t, writer.Write("second"))
	assert.Equal(t, "second", w.Clipboard().Content())
}

func TestFyneWriterNilClipboard(t *testing.T) {
	writer := NewFyne(nil)
	err := writer.Write("anything")
	require.Error(t, err)
	assert.True(t, errors.IsClipboardError(err))
}

func TestSystemWriter(t *testing.T) {
	writer := NewSystem()
	err := writer.Write("clipboarder test")
	if err != nil {
		// Headless environments have no clipboard; the error must still be typed
		assert.True(t, errors.IsClipboardError(err))
		t.Skipf("system clipboard unavailable: %v", err)
	}
}
