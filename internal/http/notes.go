package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddNoteRequest is the request body for POST /api/notes
type AddNoteRequest struct {
	VerseRequest
	Note string `json:"note" binding:"required"`
}

// UpdateNoteRequest is the request body for PUT /api/notes/:index
type UpdateNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

type NotesController struct {
	store NotesStore
}

func NewNotesController(store NotesStore) *NotesController {
	return &NotesController{store: store}
}

// ListNotes returns notes in insertion order.
// GET /api/notes
func (nc *NotesController) ListNotes(c *gin.Context) {
	notes := nc.store.Notes()
	c.JSON(http.StatusOK, gin.H{"notes": notes, "total": len(notes)})
}

// AddNote appends a note; a verse may carry several.
// POST /api/notes
func (nc *NotesController) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := nc.store.AddNote(req.Book, req.Chapter, req.Verse, req.Text, req.Note); err != nil {
		respondInternalError(c, err, "add note")
		return
	}

	respondCreated(c, gin.H{"notes": nc.store.Notes()})
}

// UpdateNote replaces the content of the note at a list position.
// PUT /api/notes/:index
func (nc *NotesController) UpdateNote(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := nc.store.UpdateNote(index, req.Note); err != nil {
		respondInternalError(c, err, "update note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": nc.store.Notes()})
}

// DeleteNote removes the note at a list position.
// DELETE /api/notes/:index
func (nc *NotesController) DeleteNote(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}

	if err := nc.store.DeleteNote(index); err != nil {
		respondInternalError(c, err, "delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": nc.store.Notes()})
}
