// Package browser implements jobclip.URLOpener with the user's default browser.
package browser

import (
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/jobclip"
	"github.com/pkg/browser"
)

// Ensure Opener implements jobclip.URLOpener at compile time.
var _ jobclip.URLOpener = (*Opener)(nil)

// Opener opens URLs in the default browser.
type Opener struct{}

var silence sync.Once

// NewOpener creates a new Opener. Output of the launched process is discarded
// so it does not interleave with the prompt written to stdout.
func NewOpener() *Opener {
	silence.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	return &Opener{}
}

// OpenURL opens url in a new browser tab or window.
func (o *Opener) OpenURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}
