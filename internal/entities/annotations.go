package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// VerseID builds the derived key used to deduplicate favourites and highlights.
func VerseID(book, chapter, verse string) string {
	return fmt.Sprintf("%s %s:%s", book, chapter, verse)
}

type Favorite struct {
	ID      string    `json:"id"`
	Book    string    `json:"book"`
	Chapter string    `json:"chapter"`
	Verse   string    `json:"verse"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
}

// Notes have no identity of their own; they are addressed by position.
type Note struct {
	Book    string    `json:"book"`
	Chapter string    `json:"chapter"`
	Verse   string    `json:"verse"`
	Text    string    `json:"text"`
	Note    string    `json:"note"`
	Date    time.Time `json:"date"`
}

type Highlight struct {
	ID      string    `json:"id"`
	Book    string    `json:"book"`
	Chapter string    `json:"chapter"`
	Verse   string    `json:"verse"`
	Text    string    `json:"text"`
	Color   string    `json:"color"`
	Date    time.Time `json:"date"`
}

// decodeLooseRef fills chapter and verse from raw JSON that may hold either
// strings or numbers. Records written by older clients used numbers.
func decodeLooseRef(rawChapter, rawVerse json.RawMessage, chapter, verse *string) error {
	if len(rawChapter) > 0 {
		if err := unmarshalLoose(rawChapter, chapter); err != nil {
			return fmt.Errorf("chapter: %w", err)
		}
	}
	if len(rawVerse) > 0 {
		if err := unmarshalLoose(rawVerse, verse); err != nil {
			return fmt.Errorf("verse: %w", err)
		}
	}
	return nil
}

func (f *Favorite) UnmarshalJSON(data []byte) error {
	type plain Favorite
	aux := struct {
		*plain
		Chapter json.RawMessage `json:"chapter"`
		Verse   json.RawMessage `json:"verse"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return decodeLooseRef(aux.Chapter, aux.Verse, &f.Chapter, &f.Verse)
}

func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	aux := struct {
		*plain
		Chapter json.RawMessage `json:"chapter"`
		Verse   json.RawMessage `json:"verse"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return decodeLooseRef(aux.Chapter, aux.Verse, &n.Chapter, &n.Verse)
}

func (h *Highlight) UnmarshalJSON(data []byte) error {
	type plain Highlight
	aux := struct {
		*plain
		Chapter json.RawMessage `json:"chapter"`
		Verse   json.RawMessage `json:"verse"`
	}{plain: (*plain)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return decodeLooseRef(aux.Chapter, aux.Verse, &h.Chapter, &h.Verse)
}
