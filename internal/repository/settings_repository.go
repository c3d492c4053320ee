package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/crosspost/internal/models"
)

type SettingsRepository interface {
	// Get returns the stored settings and whether a record existed.
	Get(ctx context.Context) (*models.UserSettings, bool, error)
	Replace(ctx context.Context, s *models.UserSettings) error
}

type settingsRepository struct {
	store KVStore
}

func NewSettingsRepository(store KVStore) SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.UserSettings, bool, error) {
	raw, ok, err := r.store.Get(ctx, SettingsKey)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	// fields missing from the stored record keep their defaults
	settings := models.DefaultSettings()
	if err := json.Unmarshal(raw, settings); err != nil {
		slog.Error(err.Error())
		return nil, false, fmt.Errorf("stored settings are malformed: %w", err)
	}
	return settings, true, nil
}

func (r *settingsRepository) Replace(ctx context.Context, s *models.UserSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, SettingsKey, raw)
}
