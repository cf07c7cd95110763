package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobclip"
)

// Ensure LoggingSettingsService implements jobclip.SettingsService.
var _ jobclip.SettingsService = (*LoggingSettingsService)(nil)

// LoggingSettingsService wraps a SettingsService with debug logging.
// Setting values are never logged.
type LoggingSettingsService struct {
	next   jobclip.SettingsService
	logger *slog.Logger
}

// NewLoggingSettingsService creates a new LoggingSettingsService.
func NewLoggingSettingsService(next jobclip.SettingsService, logger *slog.Logger) *LoggingSettingsService {
	return &LoggingSettingsService{next: next, logger: logger}
}

// FindSettings delegates to the wrapped service.
func (s *LoggingSettingsService) FindSettings(ctx context.Context) (settings *jobclip.Settings, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find settings",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSettings(ctx)
}

// SaveSettings delegates to the wrapped service.
func (s *LoggingSettingsService) SaveSettings(ctx context.Context, settings *jobclip.Settings) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save settings",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveSettings(ctx, settings)
}
