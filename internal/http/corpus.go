package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lectio/internal/corpus"
)

const (
	defaultSearchLimit = 100
	maxSearchLimit     = 1000
)

// VerseView is a verse as served to readers, with its liturgical label.
type VerseView struct {
	Number string `json:"verse"`
	Text   string `json:"text"`
	Label  string `json:"label,omitempty"`
}

type CorpusController struct {
	corpus   CorpusReader
	resolver ReferenceResolver
	now      func() time.Time
}

func NewCorpusController(reader CorpusReader, resolver ReferenceResolver, now func() time.Time) *CorpusController {
	if now == nil {
		now = time.Now
	}
	return &CorpusController{corpus: reader, resolver: resolver, now: now}
}

// requireLoaded responds with 503 and returns false while the corpus is missing.
func (cc *CorpusController) requireLoaded(c *gin.Context) bool {
	if !cc.corpus.Loaded() {
		respondCorpusNotLoaded(c)
		return false
	}
	return true
}

// ListBooks returns the canonical books present in the corpus.
// GET /api/books?testament=old|new
func (cc *CorpusController) ListBooks(c *gin.Context) {
	if !cc.requireLoaded(c) {
		return
	}

	testament, ok := corpus.ParseTestament(c.Query("testament"))
	if !ok {
		respondBadRequest(c, "testament must be 'old' or 'new'")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"testament": testament,
		"books":     cc.corpus.ListBooks(testament),
	})
}

// ListChapters returns the chapter numbers of a book.
// GET /api/books/:book/chapters
func (cc *CorpusController) ListChapters(c *gin.Context) {
	if !cc.requireLoaded(c) {
		return
	}

	book := c.Param("book")
	chapters := cc.corpus.ListChapters(book)
	if len(chapters) == 0 {
		respondNotFound(c, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book, "chapters": chapters})
}

// GetChapter returns the verses of a chapter with their liturgical labels.
// GET /api/books/:book/chapters/:chapter
func (cc *CorpusController) GetChapter(c *gin.Context) {
	if !cc.requireLoaded(c) {
		return
	}

	book := c.Param("book")
	chapter := c.Param("chapter")
	verses := cc.corpus.ListVerses(book, chapter)
	if len(verses) == 0 {
		respondNotFound(c, "chapter")
		return
	}

	views := make([]VerseView, 0, len(verses))
	for _, v := range verses {
		view := VerseView{Number: v.Number, Text: v.Text}
		if cc.resolver != nil {
			view.Label, _ = cc.resolver.ResolveLabel(book, chapter, v.Number)
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"book":    book,
		"chapter": chapter,
		"verses":  views,
	})
}

// Search returns verses containing the query, in reading order.
// GET /api/search?q=...&book=...&limit=...
func (cc *CorpusController) Search(c *gin.Context) {
	if !cc.requireLoaded(c) {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, "q is required")
		return
	}
	limit := parseLimit(c, defaultSearchLimit, maxSearchLimit)

	results := []corpus.Reference{}
	truncated := false
	for ref := range cc.corpus.Search(query, c.Query("book")) {
		if len(results) == limit {
			truncated = true
			break
		}
		results = append(results, ref)
	}

	c.JSON(http.StatusOK, gin.H{
		"query":     query,
		"results":   results,
		"count":     len(results),
		"truncated": truncated,
	})
}

// SearchGlossary returns glossary entries matching the query.
// GET /api/glossary?q=...
func (cc *CorpusController) SearchGlossary(c *gin.Context) {
	if !cc.requireLoaded(c) {
		return
	}

	entries := cc.corpus.SearchGlossary(strings.TrimSpace(c.Query("q")))
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// RandomVerse returns a randomly chosen verse.
// GET /api/verses/random
func (cc *CorpusController) RandomVerse(c *gin.Context) {
	ref, ok := cc.corpus.RandomVerse()
	if !ok {
		respondCorpusNotLoaded(c)
		return
	}
	c.JSON(http.StatusOK, ref)
}

// VerseOfDay returns today's verse from the fixed calendar.
// GET /api/verses/today
func (cc *CorpusController) VerseOfDay(c *gin.Context) {
	if cc.resolver == nil {
		respondCorpusNotLoaded(c)
		return
	}
	verse, ok := cc.resolver.VerseOfDay(cc.now())
	if !ok {
		respondCorpusNotLoaded(c)
		return
	}
	c.JSON(http.StatusOK, verse)
}
