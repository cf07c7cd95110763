package mock

import "github.com/fwojciec/jobclip"

var _ jobclip.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of jobclip.Clipboard.
type Clipboard struct {
	WriteTextFn func(text string) error
}

func (c *Clipboard) WriteText(text string) error {
	return c.WriteTextFn(text)
}

var _ jobclip.URLOpener = (*URLOpener)(nil)

// URLOpener is a mock implementation of jobclip.URLOpener.
type URLOpener struct {
	OpenURLFn func(url string) error
}

func (o *URLOpener) OpenURL(url string) error {
	return o.OpenURLFn(url)
}
