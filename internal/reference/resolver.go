package reference

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mrlokans/lectio/internal/corpus"
)

var ErrMalformedReference = errors.New("malformed reference")

// DailyVerse is the verse of the day. Theme is empty when the calendar entry
// could not be resolved and a random verse was returned instead.
type DailyVerse struct {
	corpus.Reference
	Theme string `json:"theme,omitempty"`
}

type Resolver struct {
	index  *corpus.Index
	labels corpus.Document
}

// NewResolver creates a resolver over index. labels is the liturgical map
// and may be nil, in which case ResolveLabel never finds anything.
func NewResolver(index *corpus.Index, labels corpus.Document) *Resolver {
	return &Resolver{index: index, labels: labels}
}

// HasLabels reports whether a liturgical map was loaded.
func (r *Resolver) HasLabels() bool {
	return r.labels != nil
}

// ResolveLabel returns the liturgical label for a verse. The book is matched
// exactly first, then through the fixed rewrites, then by folded comparison.
// The first stage that finds the book with the requested chapter decides the
// outcome, even if that chapter has no label for the verse.
func (r *Resolver) ResolveLabel(book, chapter, verse string) (string, bool) {
	if r.labels == nil {
		return "", false
	}

	stages := []func(corpus.Document, string, string) (string, bool){
		ExactKey,
		VariantKey,
		FoldedKey,
	}
	for _, stage := range stages {
		key, ok := stage(r.labels, book, chapter)
		if !ok {
			continue
		}
		label := r.labels[key][chapter][verse]
		return label, label != ""
	}
	return "", false
}

// ParseReference splits a reference of the form "<book> <chapter>:<verse>".
// The last whitespace-separated token is the chapter and verse; everything
// before it is the book.
func ParseReference(ref string) (book, chapter, verse string, err error) {
	parts := strings.Fields(ref)
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("%w: %q", ErrMalformedReference, ref)
	}
	chapter, verse, found := strings.Cut(parts[len(parts)-1], ":")
	if !found || chapter == "" || verse == "" {
		return "", "", "", fmt.Errorf("%w: %q", ErrMalformedReference, ref)
	}
	return strings.Join(parts[:len(parts)-1], " "), chapter, verse, nil
}

// Abbreviation expands an abbreviated book name to the corpus spelling.
// A trailing period is ignored. Unknown abbreviations are returned unchanged
// with ok set to false.
func Abbreviation(abbrev string) (string, bool) {
	name := strings.TrimSuffix(abbrev, ".")
	if full, ok := abbreviations[name]; ok {
		return full, true
	}
	return name, false
}

// VerseOfDay derives the verse for the given date from the fixed calendar:
// the day of month selects the entry and the month rotates between its five
// references. When the reference cannot be found in the corpus a random verse
// is returned; ok is false only if the corpus is not loaded.
func (r *Resolver) VerseOfDay(today time.Time) (DailyVerse, bool) {
	day := today.Day()
	if day < 1 || day > len(dailyVerses) {
		return r.randomVerse()
	}
	entry := dailyVerses[day-1]
	raw := entry.Refs[int(today.Month()-1)%len(entry.Refs)]

	abbrev, chapter, verse, err := ParseReference(raw)
	if err != nil {
		log.Printf("Verse of the day: %v", err)
		return r.randomVerse()
	}

	book, known := Abbreviation(abbrev)
	if !known {
		log.Printf("Verse of the day: unmapped abbreviation %q", abbrev)
	}

	ref, ok := r.index.Verse(book, chapter, verse)
	if !ok {
		log.Printf("Verse of the day not found: %s %s:%s (raw: %s)", book, chapter, verse, raw)
		return r.randomVerse()
	}
	return DailyVerse{Reference: ref, Theme: entry.Theme}, true
}

func (r *Resolver) randomVerse() (DailyVerse, bool) {
	ref, ok := r.index.RandomVerse()
	return DailyVerse{Reference: ref}, ok
}
