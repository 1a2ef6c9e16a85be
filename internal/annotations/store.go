// Package annotations owns the user's favourites, notes, highlights and
// reader settings.
//
// The Store keeps all four collections in memory and writes the full
// collection through a Gateway after every change. Writes happen before the
// in-memory state is replaced, so a failed write leaves the store as it was.
package annotations

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/mrlokans/lectio/internal/entities"
)

// ErrInvalidFormat is returned by ImportUserData for documents without a
// version or data section.
var ErrInvalidFormat = errors.New("invalid backup format")

// Gateway is the durable key/value storage behind the store.
type Gateway interface {
	// Load returns the stored value and whether the key exists.
	Load(key string) (string, bool, error)
	// Save writes all entries atomically.
	Save(values map[string]string) error
}

type Store struct {
	gateway    Gateway
	appVersion string
	now        func() time.Time

	mu         sync.Mutex
	favorites  []entities.Favorite
	notes      []entities.Note
	highlights []entities.Highlight
	settings   entities.ReaderSettings
}

type Option func(*Store)

// WithClock overrides the clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithAppVersion sets the application version written into exports.
func WithAppVersion(version string) Option {
	return func(s *Store) { s.appVersion = version }
}

// NewStore seeds a store from the gateway. Missing or unreadable slots fall
// back to empty collections and default settings; only a gateway error fails.
func NewStore(gateway Gateway, opts ...Option) (*Store, error) {
	s := &Store{
		gateway:    gateway,
		appVersion: "dev",
		now:        time.Now,
		settings:   entities.DefaultReaderSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := loadSlot(gateway, entities.SettingKeyFavorites, &s.favorites); err != nil {
		return nil, err
	}
	if err := loadSlot(gateway, entities.SettingKeyNotes, &s.notes); err != nil {
		return nil, err
	}
	if err := loadSlot(gateway, entities.SettingKeyHighlights, &s.highlights); err != nil {
		return nil, err
	}

	settings := entities.DefaultReaderSettings()
	if err := loadSlot(gateway, entities.SettingKeySettings, &settings); err != nil {
		return nil, err
	}
	s.settings = settings

	if s.favorites == nil {
		s.favorites = []entities.Favorite{}
	}
	if s.notes == nil {
		s.notes = []entities.Note{}
	}
	if s.highlights == nil {
		s.highlights = []entities.Highlight{}
	}

	return s, nil
}

// loadSlot decodes the stored value into dst. Malformed JSON is logged and
// leaves dst untouched.
func loadSlot[T any](gateway Gateway, key string, dst *T) error {
	raw, ok, err := gateway.Load(key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}

	value := *dst
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("annotations: ignoring malformed %s: %v", key, err)
		return nil
	}
	*dst = value
	return nil
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// persist serializes the given slots and writes them in one gateway call.
func (s *Store) persist(slots map[string]any) error {
	values := make(map[string]string, len(slots))
	for key, value := range slots {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		values[key] = string(data)
	}
	if err := s.gateway.Save(values); err != nil {
		return fmt.Errorf("failed to persist user data: %w", err)
	}
	return nil
}

// --- Favorites ---

func (s *Store) Favorites() []entities.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites)
}

func (s *Store) IsFavorite(book, chapter, verse string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favoriteIndex(entities.VerseID(book, chapter, verse)) >= 0
}

func (s *Store) favoriteIndex(id string) int {
	return slices.IndexFunc(s.favorites, func(f entities.Favorite) bool { return f.ID == id })
}

// ToggleFavorite removes the favourite for the verse if it exists and adds it
// otherwise. It reports whether the verse is a favourite afterwards.
func (s *Store) ToggleFavorite(book, chapter, verse, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entities.VerseID(book, chapter, verse)
	idx := s.favoriteIndex(id)

	var next []entities.Favorite
	if idx >= 0 {
		next = slices.Delete(slices.Clone(s.favorites), idx, idx+1)
	} else {
		next = append(slices.Clone(s.favorites), entities.Favorite{
			ID:      id,
			Book:    book,
			Chapter: chapter,
			Verse:   verse,
			Text:    text,
			Date:    s.timestamp(),
		})
	}

	if err := s.persist(map[string]any{entities.SettingKeyFavorites: next}); err != nil {
		return idx >= 0, err
	}
	s.favorites = next
	return idx < 0, nil
}

// DeleteFavorite removes the favourite at index. Out-of-range indices are ignored.
func (s *Store) DeleteFavorite(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := removeAt(s.favorites, index)
	if !ok {
		return nil
	}
	if err := s.persist(map[string]any{entities.SettingKeyFavorites: next}); err != nil {
		return err
	}
	s.favorites = next
	return nil
}

// --- Notes ---

func (s *Store) Notes() []entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

func (s *Store) AddNote(book, chapter, verse, text, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.notes), entities.Note{
		Book:    book,
		Chapter: chapter,
		Verse:   verse,
		Text:    text,
		Note:    content,
		Date:    s.timestamp(),
	})
	if err := s.persist(map[string]any{entities.SettingKeyNotes: next}); err != nil {
		return err
	}
	s.notes = next
	return nil
}

// UpdateNote replaces the content of the note at index and refreshes its
// date. Out-of-range indices are ignored.
func (s *Store) UpdateNote(index int, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.notes) {
		return nil
	}
	next := slices.Clone(s.notes)
	next[index].Note = content
	next[index].Date = s.timestamp()

	if err := s.persist(map[string]any{entities.SettingKeyNotes: next}); err != nil {
		return err
	}
	s.notes = next
	return nil
}

func (s *Store) DeleteNote(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := removeAt(s.notes, index)
	if !ok {
		return nil
	}
	if err := s.persist(map[string]any{entities.SettingKeyNotes: next}); err != nil {
		return err
	}
	s.notes = next
	return nil
}

// --- Highlights ---

func (s *Store) Highlights() []entities.Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.highlights)
}

// IsHighlighted returns the highlight for the verse, if any.
func (s *Store) IsHighlighted(book, chapter, verse string) (entities.Highlight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.highlightIndex(entities.VerseID(book, chapter, verse))
	if idx < 0 {
		return entities.Highlight{}, false
	}
	return s.highlights[idx], true
}

func (s *Store) highlightIndex(id string) int {
	return slices.IndexFunc(s.highlights, func(h entities.Highlight) bool { return h.ID == id })
}

// AddHighlight inserts or replaces the highlight for the verse. A replaced
// highlight moves to the end of the collection with a new date.
func (s *Store) AddHighlight(book, chapter, verse, text, color string) (entities.Highlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entities.VerseID(book, chapter, verse)
	next := slices.Clone(s.highlights)
	if idx := s.highlightIndex(id); idx >= 0 {
		next = slices.Delete(next, idx, idx+1)
	}

	highlight := entities.Highlight{
		ID:      id,
		Book:    book,
		Chapter: chapter,
		Verse:   verse,
		Text:    text,
		Color:   color,
		Date:    s.timestamp(),
	}
	next = append(next, highlight)

	if err := s.persist(map[string]any{entities.SettingKeyHighlights: next}); err != nil {
		return entities.Highlight{}, err
	}
	s.highlights = next
	return highlight, nil
}

// RemoveHighlight removes the highlight for the verse. It reports whether one existed.
func (s *Store) RemoveHighlight(book, chapter, verse string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.highlightIndex(entities.VerseID(book, chapter, verse))
	if idx < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(s.highlights), idx, idx+1)
	if err := s.persist(map[string]any{entities.SettingKeyHighlights: next}); err != nil {
		return false, err
	}
	s.highlights = next
	return true, nil
}

func (s *Store) DeleteHighlight(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := removeAt(s.highlights, index)
	if !ok {
		return nil
	}
	if err := s.persist(map[string]any{entities.SettingKeyHighlights: next}); err != nil {
		return err
	}
	s.highlights = next
	return nil
}

// removeAt returns a copy of items without the element at index, or false
// when index is out of range.
func removeAt[T any](items []T, index int) ([]T, bool) {
	if index < 0 || index >= len(items) {
		return nil, false
	}
	return slices.Delete(slices.Clone(items), index, index+1), true
}
