package jobclip

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// URLOpener opens an address in the user's browser.
type URLOpener interface {
	OpenURL(url string) error
}
