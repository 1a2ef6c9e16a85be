package http

import (
	"iter"
	"time"

	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/entities"
	"github.com/mrlokans/lectio/internal/reference"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls.

// CorpusReader provides read access to the loaded corpus and glossary.
type CorpusReader interface {
	Loaded() bool
	ListBooks(testament corpus.Testament) []string
	ListChapters(book string) []string
	ListVerses(book, chapter string) []corpus.Verse
	Verse(book, chapter, verse string) (corpus.Reference, bool)
	Search(query, bookFilter string) iter.Seq[corpus.Reference]
	SearchGlossary(query string) []corpus.GlossaryEntry
	RandomVerse() (corpus.Reference, bool)
	Stats() corpus.Stats
}

// ReferenceResolver provides liturgical labels and the verse of the day.
type ReferenceResolver interface {
	ResolveLabel(book, chapter, verse string) (string, bool)
	VerseOfDay(today time.Time) (reference.DailyVerse, bool)
}

// FavoritesStore defines the favorite operations of the annotation store.
type FavoritesStore interface {
	Favorites() []entities.Favorite
	ToggleFavorite(book, chapter, verse, text string) (bool, error)
	DeleteFavorite(index int) error
}

// NotesStore defines the note operations of the annotation store.
type NotesStore interface {
	Notes() []entities.Note
	AddNote(book, chapter, verse, text, content string) error
	UpdateNote(index int, content string) error
	DeleteNote(index int) error
}

// HighlightsStore defines the highlight operations of the annotation store.
type HighlightsStore interface {
	Highlights() []entities.Highlight
	IsHighlighted(book, chapter, verse string) (entities.Highlight, bool)
	AddHighlight(book, chapter, verse, text, color string) (entities.Highlight, error)
	RemoveHighlight(book, chapter, verse string) (bool, error)
	DeleteHighlight(index int) error
}

// ReaderSettingsStore defines the reader preference operations.
type ReaderSettingsStore interface {
	Settings() entities.ReaderSettings
	SetLastRead(book, chapter string) error
	SetTheme(name string) error
	SetTTSVoice(index int, name string) error
	SetSkipVerseNumbers(skip bool) error
}

// BackupStore exports and imports the whole user data set.
type BackupStore interface {
	ExportUserData() (*entities.Backup, error)
	ImportUserData(backup *entities.Backup) error
}

// AnnotationStore combines every annotation capability. It is satisfied by
// *annotations.Store.
type AnnotationStore interface {
	FavoritesStore
	NotesStore
	HighlightsStore
	ReaderSettingsStore
	BackupStore
}

// BackupRunner controls the periodic backup job.
type BackupRunner interface {
	RunNow() (string, error)
	Reschedule() error
	IsRunning() bool
	GetNextRunTime() *time.Time
}
