// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Persistence
//
//   - Gateway: Key/value slots holding user data (internal/annotations/store.go)
//
// ## Corpus Access
//
//   - Fetcher: Retrieves a named corpus document (internal/corpus/loader.go)
//   - CorpusReader: Read-only queries over the loaded corpus (internal/http/stores.go)
//   - ReferenceResolver: Liturgical labels and verse of the day (internal/http/stores.go)
//
// ## User Data
//
//   - FavoritesStore, NotesStore, HighlightsStore, ReaderSettingsStore,
//     BackupStore: Per-collection views of the annotation store (internal/http/stores.go)
//   - Exporter: Snapshot source for scheduled backups (internal/scheduler/backup.go)
//
// ## Background Work
//
//   - BackupRunner: Scheduled and on-demand backups (internal/http/stores.go)
//
// # Adding a New Corpus Source
//
// To load documents from somewhere other than a directory or HTTP server:
//
//  1. Implement Fetcher in internal/corpus/
//
//     type S3Fetcher struct {
//         client *s3.Client
//         bucket string
//     }
//
//     func (f *S3Fetcher) Fetch(ctx context.Context, name string) ([]byte, error)
//
//     var _ Fetcher = (*S3Fetcher)(nil)
//
//  2. Select it in NewFetcher based on the source prefix
//
// # Adding a New Storage Backend
//
// The annotation store only needs Load and Save over string slots:
//
//	type Gateway interface {
//	    Load(key string) (string, bool, error)
//	    Save(values map[string]string) error
//	}
//
// Save must write all values atomically. See internal/database/settings for
// the SQLite implementation and internal/annotations/memory.go for the
// in-memory one used in tests.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
