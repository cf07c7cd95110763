package mock

import "github.com/fwojciec/jobclip"

var _ jobclip.Document = (*Document)(nil)

// Document is a mock implementation of jobclip.Document.
type Document struct {
	FirstFn    func(selector string) (string, bool)
	AllFn      func(selector string) []string
	HostnameFn func() string
	URLFn      func() string
}

func (d *Document) First(selector string) (string, bool) {
	return d.FirstFn(selector)
}

func (d *Document) All(selector string) []string {
	return d.AllFn(selector)
}

func (d *Document) Hostname() string {
	return d.HostnameFn()
}

func (d *Document) URL() string {
	return d.URLFn()
}
