package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/repositories/kv"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// DarkModeApplier applies the global presentation flag. The CLI plugs in a
// terminal implementation; tests use a recording fake.
type DarkModeApplier interface {
	ApplyDarkMode(enabled bool)
}

// SettingsService holds the flat configuration record and persists it on
// every mutation. The record is always fully populated: defaults cover the
// window before a durable snapshot is found; once one exists it is adopted
// wholesale on load, not merged key by key.
type SettingsService struct {
	db      *sql.DB
	log     logging.Logger
	applier DarkModeApplier

	mu       sync.Mutex
	settings models.Settings
}

func NewSettingsService(db *sql.DB, applier DarkModeApplier, log logging.Logger) *SettingsService {
	return &SettingsService{
		db:       db,
		log:      log,
		applier:  applier,
		settings: models.DefaultSettings(),
	}
}

func (s *SettingsService) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// Load adopts a previously persisted settings record, if any, and applies
// the dark-mode side effect when it is set. A corrupt record keeps the
// defaults.
func (s *SettingsService) Load(ctx context.Context) error {
	raw, err := s.repo().Get(ctx, keySettings)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var loaded models.Settings
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.log.Warn(ctx, "settings record is corrupt, keeping defaults", "error", err)
		return nil
	}

	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()

	if loaded.DarkMode && s.applier != nil {
		s.applier.ApplyDarkMode(true)
	}
	return nil
}

// Update merges the patch onto the current settings, persists the merged
// record, and applies the dark-mode side effect when the patch touches it.
func (s *SettingsService) Update(ctx context.Context, patch models.SettingsPatch) error {
	s.mu.Lock()
	patch.Apply(&s.settings)
	raw, err := json.Marshal(s.settings)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.repo().Set(ctx, keySettings, raw)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if patch.DarkMode != nil && s.applier != nil {
		s.applier.ApplyDarkMode(*patch.DarkMode)
	}
	return nil
}

// ToggleDarkMode is sugar for Update with an inverted DarkMode.
func (s *SettingsService) ToggleDarkMode(ctx context.Context) error {
	inverted := !s.Current().DarkMode
	return s.Update(ctx, models.SettingsPatch{DarkMode: &inverted})
}

// Current returns a copy of the settings record.
func (s *SettingsService) Current() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}
