package annotations

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mrlokans/lectio/internal/entities"
)

// ExportUserData returns a snapshot of all user data. It does not modify the store.
func (s *Store) ExportUserData() (*entities.Backup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := json.Marshal(s.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	return &entities.Backup{
		Version:    entities.BackupVersion,
		ExportDate: s.timestamp(),
		AppVersion: s.appVersion,
		Data: &entities.BackupData{
			Favorites:  slices.Clone(s.favorites),
			Notes:      slices.Clone(s.notes),
			Highlights: slices.Clone(s.highlights),
			Settings:   settings,
		},
	}, nil
}

// ValidateBackup reports whether ImportUserData would accept backup. The
// document needs a version and a data section, and its settings, when
// present, must be a JSON object.
func ValidateBackup(backup *entities.Backup) error {
	if backup == nil || backup.Version == "" || backup.Data == nil {
		return ErrInvalidFormat
	}
	if len(backup.Data.Settings) > 0 {
		var settings entities.ReaderSettings
		if err := json.Unmarshal(backup.Data.Settings, &settings); err != nil {
			return fmt.Errorf("%w: settings: %v", ErrInvalidFormat, err)
		}
	}
	return nil
}

// ImportUserData replaces favourites, notes and highlights with the backup's
// and merges its settings over the current ones. Documents rejected by
// ValidateBackup return ErrInvalidFormat and change nothing.
func (s *Store) ImportUserData(backup *entities.Backup) error {
	if err := ValidateBackup(backup); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := slices.Clone(backup.Data.Favorites)
	if favorites == nil {
		favorites = []entities.Favorite{}
	}
	notes := slices.Clone(backup.Data.Notes)
	if notes == nil {
		notes = []entities.Note{}
	}
	highlights := slices.Clone(backup.Data.Highlights)
	if highlights == nil {
		highlights = []entities.Highlight{}
	}

	settings := s.settings.Clone()
	if len(backup.Data.Settings) > 0 {
		if err := json.Unmarshal(backup.Data.Settings, &settings); err != nil {
			return fmt.Errorf("%w: settings: %v", ErrInvalidFormat, err)
		}
	}

	err := s.persist(map[string]any{
		entities.SettingKeyFavorites:  favorites,
		entities.SettingKeyNotes:      notes,
		entities.SettingKeyHighlights: highlights,
		entities.SettingKeySettings:   settings,
	})
	if err != nil {
		return err
	}

	s.favorites = favorites
	s.notes = notes
	s.highlights = highlights
	s.settings = settings
	return nil
}
