// Package settings provides key/value persistence on top of the settings table.
//
// The repository doubles as the durable gateway for the annotations store:
// each user-data collection is one key whose value is serialized JSON.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	value, ok, err := repo.Load(entities.SettingKeyFavorites)
package settings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/lectio/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Load returns the stored value for key. A missing key is reported through
// the boolean, not as an error.
func (r *Repository) Load(key string) (string, bool, error) {
	setting, err := r.GetSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return setting.Value, true, nil
}

// Save writes every entry in one transaction, so a multi-key write is
// either fully applied or not at all.
func (r *Repository) Save(values map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := Upsert(tx, key, value); err != nil {
				return fmt.Errorf("failed to save %s: %w", key, err)
			}
		}
		return nil
	})
}

// Upsert creates the setting row for key or updates its value. It is shared
// with database.Database so both write paths behave the same.
func Upsert(db *gorm.DB, key, value string) error {
	var setting entities.Setting
	result := db.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return db.Save(&setting).Error
}
