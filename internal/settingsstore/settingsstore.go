package settingsstore

import (
	"errors"

	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/database"
	"gorm.io/gorm"
)

// Value sources, reported alongside effective settings.
const (
	SourceDatabase    = "database"
	SourceEnvironment = "environment"
	SourceDefault     = "default"
)

// Priority: database > environment > default
type SettingsStore struct {
	db       *database.Database
	defaults config.Backup
}

// New creates a store. defaults holds the values resolved from the
// environment by config.NewConfig.
func New(db *database.Database, defaults config.Backup) *SettingsStore {
	return &SettingsStore{db: db, defaults: defaults}
}

// override returns the database value for key, if one is set.
func (s *SettingsStore) override(key string) (string, bool) {
	setting, err := s.db.GetSetting(key)
	if err != nil || setting.Value == "" {
		return "", false
	}
	return setting.Value, true
}

func (s *SettingsStore) clear(keys ...string) error {
	for _, key := range keys {
		err := s.db.DeleteSetting(key)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}
