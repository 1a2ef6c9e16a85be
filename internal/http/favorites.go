package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lectio/internal/entities"
)

// VerseRequest identifies a verse and carries its text.
type VerseRequest struct {
	Book    string `json:"book" binding:"required"`
	Chapter string `json:"chapter" binding:"required"`
	Verse   string `json:"verse" binding:"required"`
	Text    string `json:"text"`
}

type FavoritesController struct {
	store FavoritesStore
}

func NewFavoritesController(store FavoritesStore) *FavoritesController {
	return &FavoritesController{store: store}
}

// ListFavorites returns favorites in insertion order.
// GET /api/favorites
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	favorites := fc.store.Favorites()
	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "total": len(favorites)})
}

// ToggleFavorite adds the verse to favorites, or removes it if present.
// POST /api/favorites
func (fc *FavoritesController) ToggleFavorite(c *gin.Context) {
	var req VerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	added, err := fc.store.ToggleFavorite(req.Book, req.Chapter, req.Verse, req.Text)
	if err != nil {
		respondInternalError(c, err, "toggle favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        entities.VerseID(req.Book, req.Chapter, req.Verse),
		"favorite":  added,
		"favorites": fc.store.Favorites(),
	})
}

// DeleteFavorite removes the favorite at a list position.
// DELETE /api/favorites/:index
func (fc *FavoritesController) DeleteFavorite(c *gin.Context) {
	index, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}

	if err := fc.store.DeleteFavorite(index); err != nil {
		respondInternalError(c, err, "delete favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": fc.store.Favorites()})
}
