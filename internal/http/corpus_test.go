package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/reference"
)

func setupCorpusRouter(t *testing.T, ix *corpus.Index) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	now := func() time.Time { return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC) }
	return NewRouter(RouterConfig{Corpus: ix, Resolver: testResolver(ix), Now: now})
}

func TestCorpusController_ListBooks(t *testing.T) {
	router := setupCorpusRouter(t, testIndex())

	t.Run("all books in canonical order", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[struct{ Books []string }](t, w)
		assert.Equal(t, []string{"Génesis", "Salmos", "San Juan"}, body.Books)
	})

	t.Run("filters by testament", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books?testament=old", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[struct{ Books []string }](t, w)
		assert.Equal(t, []string{"Génesis", "Salmos", "San Juan"}, body.Books, "a short listing is all old testament")

		w = performRequest(router, "GET", "/api/books?testament=new", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body = decode[struct{ Books []string }](t, w)
		assert.Empty(t, body.Books)
	})

	t.Run("rejects unknown testament", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books?testament=apocrypha", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCorpusController_Chapters(t *testing.T) {
	router := setupCorpusRouter(t, testIndex())

	t.Run("lists chapters", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books/G%C3%A9nesis/chapters", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[struct {
			Book     string
			Chapters []string
		}](t, w)
		assert.Equal(t, "Génesis", body.Book)
		assert.Equal(t, []string{"1", "2"}, body.Chapters)
	})

	t.Run("unknown book", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books/Baruc/chapters", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCorpusController_GetChapter(t *testing.T) {
	router := setupCorpusRouter(t, testIndex())

	t.Run("verses carry folded labels", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books/G%C3%A9nesis/chapters/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[struct{ Verses []VerseView }](t, w)
		require.Len(t, body.Verses, 3)
		assert.Equal(t, VerseView{Number: "1", Text: "En el principio creó Dios los cielos y la tierra.", Label: "La creación"}, body.Verses[0])
		assert.Empty(t, body.Verses[1].Label)
	})

	t.Run("verses carry variant labels", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books/San%20Juan/chapters/3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[struct{ Verses []VerseView }](t, w)
		require.Len(t, body.Verses, 1)
		assert.Equal(t, "El amor de Dios", body.Verses[0].Label)
	})

	t.Run("unknown chapter", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/books/G%C3%A9nesis/chapters/50", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCorpusController_Search(t *testing.T) {
	router := setupCorpusRouter(t, testIndex())

	type searchResponse struct {
		Results   []corpus.Reference
		Count     int
		Truncated bool
	}

	t.Run("returns matches in reading order", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/search?q=CIELOS", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[searchResponse](t, w)
		require.Equal(t, 3, body.Count)
		assert.False(t, body.Truncated)
		assert.Equal(t, "Génesis", body.Results[0].Book)
		assert.Equal(t, "1", body.Results[0].Verse)
		assert.Equal(t, "2", body.Results[1].Chapter)
		assert.Equal(t, "Salmos", body.Results[2].Book)
	})

	t.Run("limit truncates", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/search?q=cielos&limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[searchResponse](t, w)
		assert.Equal(t, 2, body.Count)
		assert.True(t, body.Truncated)
	})

	t.Run("book filter", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/search?q=dios&book=San%20Juan", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[searchResponse](t, w)
		require.Equal(t, 1, body.Count)
		assert.Equal(t, "16", body.Results[0].Verse)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/search?q=%20", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCorpusController_Glossary(t *testing.T) {
	router := setupCorpusRouter(t, testIndex())

	w := performRequest(router, "GET", "/api/glossary?q=pan", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct{ Entries []corpus.GlossaryEntry }](t, w)
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "Maná", body.Entries[0].Term)
}

func TestCorpusController_Verses(t *testing.T) {
	router := setupCorpusRouter(t, testIndex())

	t.Run("random verse", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/verses/random", nil)
		require.Equal(t, http.StatusOK, w.Code)

		ref := decode[corpus.Reference](t, w)
		assert.Equal(t, corpus.Reference{Book: "Génesis", Chapter: "1", Verse: "1", Text: "En el principio creó Dios los cielos y la tierra."}, ref)
	})

	t.Run("verse of the day", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/verses/today", nil)
		require.Equal(t, http.StatusOK, w.Code)

		verse := decode[reference.DailyVerse](t, w)
		assert.Equal(t, "Salmos", verse.Book)
		assert.Equal(t, "36", verse.Chapter)
		assert.Equal(t, "5", verse.Verse)
		assert.Equal(t, "Fidelidad", verse.Theme)
	})
}

func TestCorpusController_NotLoaded(t *testing.T) {
	router := setupCorpusRouter(t, corpus.NewIndex(nil, nil))

	for _, path := range []string{
		"/api/books",
		"/api/books/G%C3%A9nesis/chapters",
		"/api/search?q=dios",
		"/api/glossary?q=pan",
		"/api/verses/random",
		"/api/verses/today",
	} {
		t.Run(path, func(t *testing.T) {
			w := performRequest(router, "GET", path, nil)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)

			body := decode[ErrorResponse](t, w)
			assert.Equal(t, codeCorpusNotLoaded, body.Code)
		})
	}
}
