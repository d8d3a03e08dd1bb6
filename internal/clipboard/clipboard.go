// Package clipboard abstracts writing text to the system clipboard.
// The GUI writes through Fyne's clipboard; everything else uses the
// platform clipboard directly.
package clipboard

import (
	"fyne.io/fyne/v2"
	atotto "github.com/atotto/clipboard"

	"clipboarder/internal/errors"
)

// Writer delivers text to the OS clipboard.
type Writer interface {
	Write(text string) error
}

// System writes to the platform clipboard (xclip/xsel, pbcopy, win32).
type System struct{}

// NewSystem creates a system clipboard writer.
func NewSystem() *System {
	return &System{}
}

// Write makes text the clipboard contents.
func (s *System) Write(text string) error {
	if atotto.Unsupported {
		return errors.NewClipboardError("clipboard unavailable on this platform", errors.ClipboardUnavailable, nil)
	}
	if err := atotto.WriteAll(text); err != nil {
		return errors.NewClipboardError("failed to copy to clipboard", errors.ClipboardWriteFailed, err)
	}
	return nil
}

// Fyne writes through a Fyne window's clipboard.
type Fyne struct {
	clipboard fyne.Clipboard
}

// NewFyne creates a clipboard writer backed by the given Fyne clipboard.
func NewFyne(clipboard fyne.Clipboard) *Fyne {
	return &Fyne{clipboard: clipboard}
}

// Write makes text the clipboard contents.
func (f *Fyne) Write(text string) error {
	if f.clipboard == nil {
		return errors.NewClipboardError("clipboard unavailable", errors.ClipboardUnavailable, nil)
	}
	f.clipboard.SetContent(text)
	return nil
}
