// Package clipboard implements jobclip.Clipboard on the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/jobclip"
)

// Ensure Clipboard implements jobclip.Clipboard at compile time.
var _ jobclip.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard. On Linux it requires xclip,
// xsel or wl-copy on PATH.
type Clipboard struct{}

// NewClipboard creates a new Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return jobclip.Errorf(jobclip.EINTERNAL, "no clipboard utility found")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
