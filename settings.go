package jobclip

import (
	"context"
	"strings"
)

// Settings holds the user's saved preferences.
type Settings struct {
	ProjectID string `json:"projectId"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Normalize trims surrounding whitespace from all values.
func (s *Settings) Normalize() {
	s.ProjectID = strings.TrimSpace(s.ProjectID)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
}

// Validate returns an error if the settings cannot be saved.
func (s *Settings) Validate() error {
	if s.ProjectID == "" {
		return Errorf(EINVALID, "Please enter a Project ID.")
	}
	return nil
}

// ContactDetails returns the contact line substituted into the prompt.
func (s *Settings) ContactDetails() string {
	var details []string
	if s.Email != "" {
		details = append(details, "Email: "+s.Email)
	}
	if s.Phone != "" {
		details = append(details, "Phone: "+s.Phone)
	}
	if len(details) == 0 {
		return "(Contact details from your CV knowledge)"
	}
	return strings.Join(details, " | ")
}

// SettingsService persists user settings.
type SettingsService interface {
	// FindSettings returns the saved settings. Settings that were never
	// saved are returned as empty values rather than ENOTFOUND.
	FindSettings(ctx context.Context) (*Settings, error)

	// SaveSettings normalizes, validates and stores settings.
	SaveSettings(ctx context.Context, settings *Settings) error
}
