package mock

import "github.com/fwojciec/jobclip"

var _ jobclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobclip.Extractor.
type Extractor struct {
	ExtractFn func(doc jobclip.Document) *jobclip.Posting
}

func (e *Extractor) Extract(doc jobclip.Document) *jobclip.Posting {
	return e.ExtractFn(doc)
}
