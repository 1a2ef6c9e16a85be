package entities

import (
	"encoding/json"
	"time"
)

const BackupVersion = "1.0"

// Backup is the versioned export/import document for user data.
type Backup struct {
	Version    string      `json:"version"`
	ExportDate time.Time   `json:"export_date"`
	AppVersion string      `json:"app_version"`
	Data       *BackupData `json:"data"`
}

// BackupData carries settings as raw JSON so an import can merge only the
// fields the document actually contains.
type BackupData struct {
	Favorites  []Favorite      `json:"favorites"`
	Notes      []Note          `json:"notes"`
	Highlights []Highlight     `json:"highlights"`
	Settings   json.RawMessage `json:"settings,omitempty"`
}
