// Package slog provides log/slog decorators for jobclip services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobclip"
)

// Ensure LoggingExtractor implements jobclip.Extractor.
var _ jobclip.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the resolved site
// and which fields were found.
type LoggingExtractor struct {
	next   jobclip.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobclip.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc jobclip.Document) *jobclip.Posting {
	begin := time.Now()
	p := e.next.Extract(doc)
	e.logger.Info("extract",
		"url", p.SourceURL,
		"site", string(p.Site),
		"title", p.Title != "",
		"company", p.Company != "",
		"location", p.Location != "",
		"description_length", p.DescriptionLength(),
		"duration", time.Since(begin),
	)
	return p
}
