package jobclip

// Document is a read-only view of a loaded page. It is the only capability
// the extraction engine needs, so extraction can run against a live browser
// page or a parsed HTML snapshot alike.
type Document interface {
	// First returns the text content of the first element matching selector.
	// ok is false when no element matches.
	First(selector string) (text string, ok bool)

	// All returns the text content of every element matching selector,
	// in document order.
	All(selector string) []string

	// Hostname returns the host name of the page's current address,
	// without port.
	Hostname() string

	// URL returns the page's current address.
	URL() string
}

// Snapshot is the rendered HTML of a page together with the address it was
// finally served from, after redirects.
type Snapshot struct {
	URL  string
	HTML string
}
