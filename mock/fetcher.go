package mock

import (
	"context"

	"github.com/fwojciec/jobclip"
)

var _ jobclip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobclip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*jobclip.Snapshot, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobclip.Snapshot, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
