package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/lectio/internal/annotations"
	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/database/settings"
	"github.com/mrlokans/lectio/internal/http"
	"github.com/mrlokans/lectio/internal/reference"
	"github.com/mrlokans/lectio/internal/scheduler"
)

// =============================================================================
// Persistence
// =============================================================================

// Gateway implementations
var _ annotations.Gateway = (*settings.Repository)(nil)
var _ annotations.Gateway = (*annotations.MemoryGateway)(nil)

// =============================================================================
// Corpus
// =============================================================================

// Fetcher implementations
var _ corpus.Fetcher = corpus.FileFetcher{}
var _ corpus.Fetcher = (*corpus.HTTPFetcher)(nil)

// CorpusReader / ReferenceResolver implementations
var _ http.CorpusReader = (*corpus.Index)(nil)
var _ http.ReferenceResolver = (*reference.Resolver)(nil)

// =============================================================================
// User Data
// =============================================================================

// AnnotationStore implementations
var _ http.AnnotationStore = (*annotations.Store)(nil)

// Exporter implementations
var _ scheduler.Exporter = (*annotations.Store)(nil)

// =============================================================================
// Background Work
// =============================================================================

// BackupRunner implementations
var _ http.BackupRunner = (*scheduler.BackupScheduler)(nil)
