package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lectio/internal/utils"
)

// AddHighlightRequest is the request body for POST /api/highlights
type AddHighlightRequest struct {
	VerseRequest
	Color string `json:"color" binding:"required"`
}

type HighlightsController struct {
	store HighlightsStore
}

func NewHighlightsController(store HighlightsStore) *HighlightsController {
	return &HighlightsController{store: store}
}

// ListHighlights returns all highlights, or the highlight of a single verse
// when book, chapter and verse are given.
// GET /api/highlights[?book=...&chapter=...&verse=...]
func (hc *HighlightsController) ListHighlights(c *gin.Context) {
	book, chapter, verse := c.Query("book"), c.Query("chapter"), c.Query("verse")
	if book != "" || chapter != "" || verse != "" {
		if book == "" || chapter == "" || verse == "" {
			respondBadRequest(c, "book, chapter and verse must be given together")
			return
		}
		highlight, ok := hc.store.IsHighlighted(book, chapter, verse)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"highlighted": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"highlighted": true, "highlight": highlight})
		return
	}

	highlights := hc.store.Highlights()
	c.JSON(http.StatusOK, gin.H{"highlights": highlights, "total": len(highlights)})
}

// AddHighlight highlights a verse, replacing the color of an existing highlight.
// POST /api/highlights
func (hc *HighlightsController) AddHighlight(c *gin.Context) {
	var req AddHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	color, err := utils.NormalizeColor(req.Color)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	highlight, err := hc.store.AddHighlight(req.Book, req.Chapter, req.Verse, req.Text, color)
	if err != nil {
		respondInternalError(c, err, "add highlight")
		return
	}

	c.JSON(http.StatusOK, gin.H{"highlight": highlight})
}

// RemoveHighlight removes the highlight of a verse.
// DELETE /api/highlights?book=...&chapter=...&verse=...
func (hc *HighlightsController) RemoveHighlight(c *gin.Context) {
	book, chapter, verse := c.Query("book"), c.Query("chapter"), c.Query("verse")
	if book == "" || chapter == "" || verse == "" {
		respondBadRequest(c, "book, chapter and verse are required")
		return
	}

	removed, err := hc.store.RemoveHighlight(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "remove highlight")
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// DeleteHighlight removes the highlight at a list position.
// DELETE /api/highlights/:index
func (hc *HighlightsController) DeleteHighlight(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}

	if err := hc.store.DeleteHighlight(index); err != nil {
		respondInternalError(c, err, "delete highlight")
		return
	}

	c.JSON(http.StatusOK, gin.H{"highlights": hc.store.Highlights()})
}
