package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/jobclip"
)

// Compile-time interface verification.
var _ jobclip.SettingsService = (*SettingsService)(nil)

// Setting keys.
const (
	keyProjectID = "project_id"
	keyEmail     = "email"
	keyPhone     = "phone"
)

// SettingsService implements jobclip.SettingsService as key-value rows.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// FindSettings returns the saved settings. Missing keys are left empty.
func (s *SettingsService) FindSettings(ctx context.Context) (*jobclip.Settings, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value
		FROM settings
		WHERE key IN (?, ?, ?)
	`, keyProjectID, keyEmail, keyPhone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings jobclip.Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		switch key {
		case keyProjectID:
			settings.ProjectID = value
		case keyEmail:
			settings.Email = value
		case keyPhone:
			settings.Phone = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// SaveSettings normalizes, validates and stores all settings atomically.
// Empty email or phone values are stored, clearing earlier ones.
func (s *SettingsService) SaveSettings(ctx context.Context, settings *jobclip.Settings) error {
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	values := []struct{ key, value string }{
		{keyProjectID, settings.ProjectID},
		{keyEmail, settings.Email},
		{keyPhone, settings.Phone},
	}
	for _, v := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, v.key, v.value, now); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}

	return tx.Commit()
}
