package jobclip

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// FallbackThreshold is the description length, in characters, below which
// profile-driven extraction is considered incomplete and the main content
// landmark is used instead.
const FallbackThreshold = 200

var mainContentLocators = LocatorSet{"main", "article", `[role="main"]`}

// MainContentLocators returns the locators of the page's main content
// landmark, in priority order.
func MainContentLocators() LocatorSet {
	return slices.Clone(mainContentLocators)
}

// Extractor turns a loaded page into a Posting.
type Extractor interface {
	// Extract reads the page and returns a best-effort Posting.
	// Fields that cannot be found are empty; Extract never fails.
	Extract(doc Document) *Posting
}

var _ Extractor = (*Engine)(nil)

// Engine extracts postings using the site profiles of a Registry.
// Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	registry *Registry
}

// NewEngine creates an Engine backed by registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Extract classifies the page by hostname, applies the matching profile
// field by field and falls back to the main content landmark when the
// description is shorter than FallbackThreshold.
func (e *Engine) Extract(doc Document) *Posting {
	profile := e.registry.ResolveProfile(doc.Hostname())

	p := &Posting{
		Site:        profile.Site,
		Title:       resolve(doc, profile.Title, firstText),
		Company:     resolve(doc, profile.Company, firstText),
		Location:    resolve(doc, profile.Location, firstText),
		Description: resolve(doc, profile.Description, joinedText),
		SourceURL:   doc.URL(),
	}

	if utf8.RuneCountInString(p.Description) < FallbackThreshold {
		if landmark, found := resolveFound(doc, mainContentLocators, firstText); found {
			p.Description = landmark
		}
	}

	return p
}

// lookup reads one locator from doc. found reports whether the locator
// settles the field, which stops resolution at that locator.
type lookup func(doc Document, locator string) (text string, found bool)

// resolve tries locators in order and returns the text of the first one
// that settles the field, or "" when none does.
func resolve(doc Document, locators LocatorSet, fn lookup) string {
	text, _ := resolveFound(doc, locators, fn)
	return text
}

// resolveFound is resolve that also reports whether any locator settled
// the field.
func resolveFound(doc Document, locators LocatorSet, fn lookup) (string, bool) {
	for _, locator := range locators {
		if text, found := fn(doc, locator); found {
			return text, true
		}
	}
	return "", false
}

// firstText settles on the first matching element even when its text is
// only whitespace.
func firstText(doc Document, locator string) (string, bool) {
	text, ok := doc.First(locator)
	return strings.TrimSpace(text), ok
}

// joinedText joins the trimmed, non-empty text of all matching elements
// with blank lines. It settles only on a non-empty result.
func joinedText(doc Document, locator string) (string, bool) {
	var parts []string
	for _, text := range doc.All(locator) {
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	joined := strings.Join(parts, "\n\n")
	return joined, joined != ""
}
