package jobclip

import "context"

// Fetcher retrieves page snapshots from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// job boards.
type Fetcher interface {
	// Fetch loads the URL and returns its rendered HTML and final address.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Snapshot, error)

	// Close releases resources held by the fetcher.
	Close() error
}
