package http

import (
	"time"

	"github.com/mrlokans/lectio/internal/audit"
	"github.com/mrlokans/lectio/internal/database"
	"github.com/mrlokans/lectio/internal/settingsstore"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Read-only corpus
	Corpus   CorpusReader
	Resolver ReferenceResolver

	// User data
	Store    AnnotationStore
	Database *database.Database
	Auditor  *audit.Auditor

	// Backup scheduling (optional)
	SettingsStore   *settingsstore.SettingsStore
	BackupScheduler BackupRunner

	// Application info
	Version string

	// Clock for the verse of the day; defaults to time.Now
	Now func() time.Time
}
