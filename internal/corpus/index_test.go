package corpus

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() Document {
	return Document{
		"San Juan": {
			"3": {"16": "Porque de tal manera amó Dios al mundo", "17": "Porque no envió Dios a su Hijo"},
			"1": {"1": "En el principio era el Verbo"},
		},
		"Génesis": {
			"10": {"1": "Estas son las generaciones"},
			"2":  {"1": "Fueron, pues, acabados los cielos"},
			"1": {
				"10": "Y llamó Dios a lo seco Tierra",
				"2":  "Y la tierra estaba desordenada",
				"1":  "En el principio creó Dios los cielos y la tierra",
			},
		},
		"Salmos":   {"23": {"1": "Jehová es mi pastor; nada me faltará"}},
		"Tobías":   {"1": {"1": "Libro de las palabras de Tobías"}},
		"Hechos":   {"1": {"1": "En el primer tratado, oh Teófilo"}},
		"Malaquías": {"4": {"6": "El hará volver el corazón de los padres"}},
	}
}

func testGlossary() Glossary {
	return Glossary{
		"Verbo":  "Palabra divina",
		"Maná":   "Pan del cielo dado en el desierto",
		"Pastor": "El que cuida las ovejas",
	}
}

func TestIndex_Unloaded(t *testing.T) {
	var nilIndex *Index
	empty := NewIndex(nil, nil)

	for _, ix := range []*Index{nilIndex, empty} {
		assert.False(t, ix.Loaded())
		assert.Empty(t, ix.ListBooks(TestamentAll))
		assert.Empty(t, ix.ListChapters("Génesis"))
		assert.Empty(t, ix.ListVerses("Génesis", "1"))
		assert.Empty(t, slices.Collect(ix.Search("Dios", "")))
		assert.Empty(t, ix.SearchGlossary("pan"))
		_, ok := ix.RandomVerse()
		assert.False(t, ok)
		assert.Equal(t, Stats{}, ix.Stats())
	}
}

func TestIndex_ListBooks(t *testing.T) {
	t.Run("partial corpus", func(t *testing.T) {
		ix := NewIndex(testDocument(), testGlossary())

		all := ix.ListBooks(TestamentAll)
		assert.Equal(t, []string{"Génesis", "Salmos", "Malaquías", "San Juan", "Hechos"}, all)

		// Fewer than 39 books: everything lands in the old testament listing.
		assert.Equal(t, all, ix.ListBooks(TestamentOld))
		assert.Empty(t, ix.ListBooks(TestamentNew))
	})

	t.Run("full canon", func(t *testing.T) {
		doc := Document{}
		for _, book := range CanonicalBooks() {
			doc[book] = map[string]map[string]string{"1": {"1": book}}
		}
		ix := NewIndex(doc, nil)

		old := ix.ListBooks(TestamentOld)
		newT := ix.ListBooks(TestamentNew)
		require.Len(t, old, 39)
		require.Len(t, newT, 27)
		assert.Equal(t, "Malaquías", old[38])
		assert.Equal(t, "San Mateo", newT[0])
		assert.Equal(t, ix.ListBooks(TestamentAll), append(slices.Clone(old), newT...), "testaments partition the listing")
	})

	t.Run("split is positional when a book is missing", func(t *testing.T) {
		doc := Document{}
		for _, book := range CanonicalBooks() {
			if book == "Génesis" {
				continue
			}
			doc[book] = map[string]map[string]string{"1": {"1": book}}
		}
		ix := NewIndex(doc, nil)

		old := ix.ListBooks(TestamentOld)
		newT := ix.ListBooks(TestamentNew)
		require.Len(t, old, 39)
		require.Len(t, newT, 26)
		assert.Equal(t, "Éxodo", old[0])
		assert.Equal(t, "San Mateo", old[38])
		assert.Equal(t, "San Marcos", newT[0])
	})
}

func TestIndex_ListChapters_NumericOrder(t *testing.T) {
	ix := NewIndex(testDocument(), nil)

	assert.Equal(t, []string{"1", "2", "10"}, ix.ListChapters("Génesis"))
	assert.Empty(t, ix.ListChapters("Judas"))
}

func TestIndex_ListVerses_NumericOrder(t *testing.T) {
	ix := NewIndex(testDocument(), nil)

	verses := ix.ListVerses("Génesis", "1")
	require.Len(t, verses, 3)
	assert.Equal(t, "1", verses[0].Number)
	assert.Equal(t, "2", verses[1].Number)
	assert.Equal(t, "10", verses[2].Number)
	assert.Equal(t, "Y llamó Dios a lo seco Tierra", verses[2].Text)

	assert.Empty(t, ix.ListVerses("Génesis", "50"))
	assert.Empty(t, ix.ListVerses("Judas", "1"))
}

func TestIndex_Verse(t *testing.T) {
	ix := NewIndex(testDocument(), nil)

	ref, ok := ix.Verse("Salmos", "23", "1")
	require.True(t, ok)
	assert.Equal(t, "Jehová es mi pastor; nada me faltará", ref.Text)

	_, ok = ix.Verse("Salmos", "23", "9")
	assert.False(t, ok)
}

func TestIndex_Search(t *testing.T) {
	ix := NewIndex(testDocument(), nil)

	t.Run("case insensitive in listing order", func(t *testing.T) {
		results := slices.Collect(ix.Search("PRINCIPIO", ""))
		require.Len(t, results, 2)
		assert.Equal(t, Reference{Book: "Génesis", Chapter: "1", Verse: "1", Text: "En el principio creó Dios los cielos y la tierra"}, results[0])
		assert.Equal(t, "San Juan", results[1].Book)
	})

	t.Run("numeric chapter and verse order", func(t *testing.T) {
		var got []string
		for ref := range ix.Search("", "Génesis") {
			got = append(got, ref.Chapter+":"+ref.Verse)
		}
		assert.Equal(t, []string{"1:1", "1:2", "1:10", "2:1", "10:1"}, got)
	})

	t.Run("book filter", func(t *testing.T) {
		results := slices.Collect(ix.Search("dios", "San Juan"))
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Equal(t, "San Juan", r.Book)
		}
		assert.Empty(t, slices.Collect(ix.Search("dios", "Judas")))
	})

	t.Run("non-canonical books are searched last", func(t *testing.T) {
		results := slices.Collect(ix.Search("libro", ""))
		require.Len(t, results, 1)
		assert.Equal(t, "Tobías", results[0].Book)
	})

	t.Run("sequence is restartable and stops early", func(t *testing.T) {
		seq := ix.Search("dios", "")
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)

		count := 0
		for range seq {
			count++
			if count == 1 {
				break
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestIndex_SearchGlossary(t *testing.T) {
	ix := NewIndex(testDocument(), testGlossary())

	byTerm := ix.SearchGlossary("verbo")
	require.Len(t, byTerm, 1)
	assert.Equal(t, GlossaryEntry{Term: "Verbo", Definition: "Palabra divina"}, byTerm[0])

	byDefinition := ix.SearchGlossary("CIELO")
	require.Len(t, byDefinition, 1)
	assert.Equal(t, "Maná", byDefinition[0].Term)

	all := ix.SearchGlossary("")
	assert.Equal(t, []string{"Maná", "Pastor", "Verbo"}, []string{all[0].Term, all[1].Term, all[2].Term})
}

func TestIndex_RandomVerse(t *testing.T) {
	t.Run("draws book, chapter and verse independently", func(t *testing.T) {
		var bounds []int
		pick := func(n int) int {
			bounds = append(bounds, n)
			return n - 1
		}
		ix := NewIndex(testDocument(), nil, WithRandom(pick))

		ref, ok := ix.RandomVerse()
		require.True(t, ok)

		// Last book in index order is the non-canonical Tobías.
		assert.Equal(t, "Tobías", ref.Book)
		assert.Equal(t, "1", ref.Chapter)
		assert.Equal(t, "1", ref.Verse)
		assert.Equal(t, []int{6, 1, 1}, bounds)
	})

	t.Run("picks within the chosen chapter", func(t *testing.T) {
		ix := NewIndex(Document{"Génesis": {"1": {"1": "a", "2": "b", "10": "c"}}}, nil,
			WithRandom(func(n int) int { return n - 1 }))

		ref, ok := ix.RandomVerse()
		require.True(t, ok)
		assert.Equal(t, "10", ref.Verse)
		assert.Equal(t, "c", ref.Text)
	})
}

func TestIndex_Stats(t *testing.T) {
	ix := NewIndex(testDocument(), testGlossary())

	stats := ix.Stats()
	assert.Equal(t, 6, stats.Books)
	assert.Equal(t, 9, stats.Chapters)
	assert.Equal(t, 12, stats.Verses)
	assert.Equal(t, 3, stats.GlossaryTerms)
}

func TestParseTestament(t *testing.T) {
	for _, valid := range []string{"", "old", "new"} {
		_, ok := ParseTestament(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseTestament("apocrypha")
	assert.False(t, ok)
}
