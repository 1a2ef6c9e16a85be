// Package corpus provides read-only access to the scripture text and the
// glossary, plus the loader that fetches them at startup.
package corpus

import (
	"errors"
	"iter"
	"math/rand/v2"
	"slices"
	"sort"
	"strconv"
	"strings"
)

var ErrNotLoaded = errors.New("corpus not loaded")

// Document is the shape shared by the corpus and the liturgical map:
// book → chapter number → verse number → string.
type Document map[string]map[string]map[string]string

// Glossary maps a term to its definition.
type Glossary map[string]string

type Verse struct {
	Number string `json:"verse"`
	Text   string `json:"text"`
}

// Reference identifies a single verse together with its text.
type Reference struct {
	Book    string `json:"book"`
	Chapter string `json:"chapter"`
	Verse   string `json:"verse"`
	Text    string `json:"text"`
}

type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type Stats struct {
	Books         int `json:"books"`
	Chapters      int `json:"chapters"`
	Verses        int `json:"verses"`
	GlossaryTerms int `json:"glossary_terms"`
}

// Index is an immutable view over a loaded corpus. The zero value and a nil
// *Index behave as an unloaded corpus: listings are empty, lookups miss.
type Index struct {
	books    Document
	glossary Glossary

	// order is every book in the corpus: canonical books first in canonical
	// order, then unknown books alphabetically.
	order    []string
	chapters map[string][]string
	terms    []string

	intn func(n int) int
}

type IndexOption func(*Index)

// WithRandom sets the source of uniform integers in [0, n) used by RandomVerse.
func WithRandom(intn func(n int) int) IndexOption {
	return func(ix *Index) { ix.intn = intn }
}

// NewIndex builds an index over books and glossary. Neither map may be
// modified afterwards.
func NewIndex(books Document, glossary Glossary, opts ...IndexOption) *Index {
	ix := &Index{
		books:    books,
		glossary: glossary,
		chapters: make(map[string][]string, len(books)),
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(ix)
	}

	for book, chapters := range books {
		ix.order = append(ix.order, book)
		ix.chapters[book] = sortedKeys(chapters)
	}
	sort.SliceStable(ix.order, func(i, j int) bool {
		pi, iok := canonicalPosition[ix.order[i]]
		pj, jok := canonicalPosition[ix.order[j]]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return ix.order[i] < ix.order[j]
		}
	})

	for term := range glossary {
		ix.terms = append(ix.terms, term)
	}
	sort.Strings(ix.terms)

	return ix
}

func (ix *Index) Loaded() bool {
	return ix != nil && ix.books != nil
}

// ListBooks returns the canonical books present in the corpus, optionally
// restricted to one testament. The testaments are split by position in the
// present listing: the first 39 books are old, the rest new. A corpus missing
// canonical books therefore shifts the boundary.
func (ix *Index) ListBooks(testament Testament) []string {
	if !ix.Loaded() {
		return []string{}
	}
	books := []string{}
	for _, book := range ix.order {
		if _, ok := canonicalPosition[book]; ok {
			books = append(books, book)
		}
	}

	split := min(oldTestamentSize, len(books))
	switch testament {
	case TestamentOld:
		return books[:split]
	case TestamentNew:
		return books[split:]
	}
	return books
}

// ListChapters returns the chapter numbers of book in numeric order.
func (ix *Index) ListChapters(book string) []string {
	if !ix.Loaded() {
		return []string{}
	}
	chapters, ok := ix.chapters[book]
	if !ok {
		return []string{}
	}
	return slices.Clone(chapters)
}

// ListVerses returns the verses of a chapter in numeric order.
func (ix *Index) ListVerses(book, chapter string) []Verse {
	if !ix.Loaded() {
		return []Verse{}
	}
	verses, ok := ix.books[book][chapter]
	if !ok {
		return []Verse{}
	}
	out := make([]Verse, 0, len(verses))
	for _, number := range sortedKeys(verses) {
		out = append(out, Verse{Number: number, Text: verses[number]})
	}
	return out
}

// Verse looks up a single verse.
func (ix *Index) Verse(book, chapter, verse string) (Reference, bool) {
	if !ix.Loaded() {
		return Reference{}, false
	}
	text, ok := ix.books[book][chapter][verse]
	if !ok {
		return Reference{}, false
	}
	return Reference{Book: book, Chapter: chapter, Verse: verse, Text: text}, true
}

// Search yields every verse whose text contains query, ignoring case. When
// bookFilter is non-empty only that book is searched. Results come in
// listing order: books as in the index order, chapters and verses numerically.
// The sequence is evaluated lazily and can be ranged over more than once.
func (ix *Index) Search(query, bookFilter string) iter.Seq[Reference] {
	q := strings.ToLower(query)
	return func(yield func(Reference) bool) {
		if !ix.Loaded() {
			return
		}
		books := ix.order
		if bookFilter != "" {
			if _, ok := ix.books[bookFilter]; !ok {
				return
			}
			books = []string{bookFilter}
		}
		for _, book := range books {
			for _, chapter := range ix.chapters[book] {
				verses := ix.books[book][chapter]
				for _, number := range sortedKeys(verses) {
					text := verses[number]
					if !strings.Contains(strings.ToLower(text), q) {
						continue
					}
					if !yield(Reference{Book: book, Chapter: chapter, Verse: number, Text: text}) {
						return
					}
				}
			}
		}
	}
}

// SearchGlossary returns the entries whose term or definition contains
// query, ignoring case, ordered by term.
func (ix *Index) SearchGlossary(query string) []GlossaryEntry {
	entries := []GlossaryEntry{}
	if ix == nil || ix.glossary == nil {
		return entries
	}
	q := strings.ToLower(query)
	for _, term := range ix.terms {
		definition := ix.glossary[term]
		if strings.Contains(strings.ToLower(term), q) || strings.Contains(strings.ToLower(definition), q) {
			entries = append(entries, GlossaryEntry{Term: term, Definition: definition})
		}
	}
	return entries
}

// RandomVerse picks a book, then a chapter of it, then a verse of that
// chapter, each uniformly. Verses in short chapters are therefore more likely
// than verses in long ones.
func (ix *Index) RandomVerse() (Reference, bool) {
	if !ix.Loaded() || len(ix.order) == 0 {
		return Reference{}, false
	}
	book := ix.order[ix.intn(len(ix.order))]

	chapters := ix.chapters[book]
	if len(chapters) == 0 {
		return Reference{}, false
	}
	chapter := chapters[ix.intn(len(chapters))]

	verses := sortedKeys(ix.books[book][chapter])
	if len(verses) == 0 {
		return Reference{}, false
	}
	verse := verses[ix.intn(len(verses))]

	return Reference{Book: book, Chapter: chapter, Verse: verse, Text: ix.books[book][chapter][verse]}, true
}

func (ix *Index) Stats() Stats {
	if !ix.Loaded() {
		return Stats{}
	}
	stats := Stats{Books: len(ix.books), GlossaryTerms: len(ix.glossary)}
	for _, chapters := range ix.books {
		stats.Chapters += len(chapters)
		for _, verses := range chapters {
			stats.Verses += len(verses)
		}
	}
	return stats
}

// sortedKeys returns the keys of m ordered by numeric value. Keys that are
// not numbers sort after all numeric keys, lexically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		switch {
		case aErr == nil && bErr == nil:
			if a != b {
				return a < b
			}
			return keys[i] < keys[j]
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
