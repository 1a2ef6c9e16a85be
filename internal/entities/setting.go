package entities

import (
	"time"
)

// Setting is a single durable key/value slot. User data collections are
// stored here as serialized JSON, one row per collection.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeyFavorites  = "bible_favorites"
	SettingKeyNotes      = "bible_notes"
	SettingKeyHighlights = "bible_highlights"
	SettingKeySettings   = "bible_settings"

	// Backup scheduler overrides and bookkeeping
	SettingKeyBackupEnabled     = "backup_enabled"
	SettingKeyBackupSchedule    = "backup_schedule"
	SettingKeyBackupLastAt      = "backup_last_at"
	SettingKeyBackupLastStatus  = "backup_last_status"
	SettingKeyBackupLastMessage = "backup_last_message"
)
