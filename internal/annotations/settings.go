package annotations

import (
	"github.com/mrlokans/lectio/internal/entities"
)

func (s *Store) Settings() entities.ReaderSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

func (s *Store) SetLastRead(book, chapter string) error {
	return s.updateSettings(func(settings *entities.ReaderSettings) {
		settings.LastBook = book
		settings.LastChapter = chapter
	})
}

func (s *Store) SetTheme(name string) error {
	return s.updateSettings(func(settings *entities.ReaderSettings) {
		settings.Theme = name
	})
}

func (s *Store) SetTTSVoice(index int, name string) error {
	return s.updateSettings(func(settings *entities.ReaderSettings) {
		settings.TTSVoice = index
		settings.TTSVoiceName = name
	})
}

func (s *Store) SetSkipVerseNumbers(skip bool) error {
	return s.updateSettings(func(settings *entities.ReaderSettings) {
		settings.SkipVerseNumbers = skip
	})
}

func (s *Store) updateSettings(mutate func(*entities.ReaderSettings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.Clone()
	mutate(&next)
	if err := s.persist(map[string]any{entities.SettingKeySettings: next}); err != nil {
		return err
	}
	s.settings = next
	return nil
}
