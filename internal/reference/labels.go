// Package reference resolves loosely formatted scripture references: book
// name variants against the liturgical map, and the verse of the day.
package reference

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mrlokans/lectio/internal/corpus"
)

// bookVariants are the rewrites tried, in order, when the book name has no
// exact entry in the liturgical map. Each replaces the first occurrence only.
var bookVariants = []struct{ old, new string }{
	{"San ", "S. "},
	{"San ", ""},
	{"S. ", ""},
	{"1 ", "1"},
	{"2 ", "2"},
	{"3 ", "3"},
}

// Variants returns the rewritten forms of book in lookup order.
func Variants(book string) []string {
	out := make([]string, 0, len(bookVariants))
	for _, v := range bookVariants {
		out = append(out, strings.Replace(book, v.old, v.new, 1))
	}
	return out
}

// Fold reduces a book name to its comparison form: lower case, diacritics
// removed, and only ASCII letters and digits kept.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExactKey reports whether book itself has an entry for chapter.
func ExactKey(labels corpus.Document, book, chapter string) (string, bool) {
	if _, ok := labels[book][chapter]; ok {
		return book, true
	}
	return "", false
}

// VariantKey returns the first rewrite of book that has an entry for chapter.
func VariantKey(labels corpus.Document, book, chapter string) (string, bool) {
	for _, variant := range Variants(book) {
		if _, ok := labels[variant][chapter]; ok {
			return variant, true
		}
	}
	return "", false
}

// FoldedKey scans the map for a key whose folded form equals the folded
// book name. Keys are scanned in sorted order; the first equal key decides,
// and it must have an entry for chapter.
func FoldedKey(labels corpus.Document, book, chapter string) (string, bool) {
	target := Fold(book)

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if Fold(k) != target {
			continue
		}
		if _, ok := labels[k][chapter]; ok {
			return k, true
		}
		return "", false
	}
	return "", false
}
