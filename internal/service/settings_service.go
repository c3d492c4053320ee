package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/maheshrc27/crosspost/internal/repository"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

type SettingsService interface {
	// Get returns the stored settings, or the defaults when nothing was saved.
	Get(ctx context.Context) (*models.UserSettings, error)
	Save(ctx context.Context, update *transfer.SettingsUpdate) (*models.UserSettings, error)
}

type settingsService struct {
	sr repository.SettingsRepository
}

func NewSettingsService(sr repository.SettingsRepository) SettingsService {
	return &settingsService{
		sr: sr,
	}
}

func (s *settingsService) Get(ctx context.Context) (*models.UserSettings, error) {
	settings, isExist, err := s.sr.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !isExist {
		return models.DefaultSettings(), nil
	}

	if settings.Name == "" {
		settings.Name = models.DefaultDisplayName
	}
	if settings.Privacy == "" {
		settings.Privacy = models.PrivacyPublic
	}
	return settings, nil
}

// Save replaces the stored record with the submitted form. Nothing from the
// previous record survives.
func (s *settingsService) Save(ctx context.Context, update *transfer.SettingsUpdate) (*models.UserSettings, error) {
	settings := &models.UserSettings{
		Name:            sanitizeText(update.Name),
		Email:           sanitizeText(update.Email),
		DefaultPlatform: strings.ToLower(strings.TrimSpace(update.DefaultPlatform)),
		AutoSave:        update.AutoSave,
		Notifications:   update.Notifications,
		Privacy:         strings.ToLower(strings.TrimSpace(update.Privacy)),
	}
	if settings.Name == "" {
		settings.Name = models.DefaultDisplayName
	}
	if settings.Privacy == "" {
		settings.Privacy = models.PrivacyPublic
	}

	if err := s.sr.Replace(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
