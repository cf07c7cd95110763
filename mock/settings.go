package mock

import (
	"context"

	"github.com/fwojciec/jobclip"
)

var _ jobclip.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of jobclip.SettingsService.
type SettingsService struct {
	FindSettingsFn func(ctx context.Context) (*jobclip.Settings, error)
	SaveSettingsFn func(ctx context.Context, settings *jobclip.Settings) error
}

func (s *SettingsService) FindSettings(ctx context.Context) (*jobclip.Settings, error) {
	return s.FindSettingsFn(ctx)
}

func (s *SettingsService) SaveSettings(ctx context.Context, settings *jobclip.Settings) error {
	return s.SaveSettingsFn(ctx, settings)
}
