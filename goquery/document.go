// Package goquery implements jobclip.Document over parsed HTML snapshots.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobclip"
)

// Ensure Document implements jobclip.Document at compile time.
var _ jobclip.Document = (*Document)(nil)

// Document is a read-only, queryable view of an HTML snapshot.
// Document is safe for concurrent use once created.
type Document struct {
	doc *goquery.Document
	url *url.URL
	raw string
}

// NewDocument parses a snapshot. The snapshot URL must be absolute since
// the engine classifies pages by hostname.
func NewDocument(snapshot *jobclip.Snapshot) (*Document, error) {
	u, err := url.Parse(snapshot.URL)
	if err != nil {
		return nil, jobclip.Errorf(jobclip.EINVALID, "invalid page URL: %v", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, jobclip.Errorf(jobclip.EINVALID, "page URL must be absolute: %q", snapshot.URL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot.HTML))
	if err != nil {
		return nil, jobclip.Errorf(jobclip.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc, url: u, raw: snapshot.URL}, nil
}

// First returns the text content of the first element matching selector.
func (d *Document) First(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}

// All returns the text content of every element matching selector.
func (d *Document) All(selector string) []string {
	sel := d.doc.Find(selector)
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	return texts
}

// Hostname returns the lower-cased host of the page URL, without port.
func (d *Document) Hostname() string {
	return strings.ToLower(d.url.Hostname())
}

// URL returns the page URL exactly as given in the snapshot.
func (d *Document) URL() string {
	return d.raw
}
