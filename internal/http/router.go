package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Corpus, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Corpus endpoints
	if cfg.Corpus != nil {
		corpusController := NewCorpusController(cfg.Corpus, cfg.Resolver, cfg.Now)
		router.GET("/api/books", corpusController.ListBooks)
		router.GET("/api/books/:book/chapters", corpusController.ListChapters)
		router.GET("/api/books/:book/chapters/:chapter", corpusController.GetChapter)
		router.GET("/api/search", corpusController.Search)
		router.GET("/api/glossary", corpusController.SearchGlossary)
		router.GET("/api/verses/random", corpusController.RandomVerse)
		router.GET("/api/verses/today", corpusController.VerseOfDay)
	}

	// Annotation endpoints
	if cfg.Store != nil {
		favorites := NewFavoritesController(cfg.Store)
		router.GET("/api/favorites", favorites.ListFavorites)
		router.POST("/api/favorites", favorites.ToggleFavorite)
		router.DELETE("/api/favorites/:index", favorites.DeleteFavorite)

		notes := NewNotesController(cfg.Store)
		router.GET("/api/notes", notes.ListNotes)
		router.POST("/api/notes", notes.AddNote)
		router.PUT("/api/notes/:index", notes.UpdateNote)
		router.DELETE("/api/notes/:index", notes.DeleteNote)

		highlights := NewHighlightsController(cfg.Store)
		router.GET("/api/highlights", highlights.ListHighlights)
		router.POST("/api/highlights", highlights.AddHighlight)
		router.DELETE("/api/highlights", highlights.RemoveHighlight)
		router.DELETE("/api/highlights/:index", highlights.DeleteHighlight)

		settings := NewSettingsController(cfg.Store)
		router.GET("/api/settings", settings.GetSettings)
		router.PUT("/api/settings/last-read", settings.SetLastRead)
		router.PUT("/api/settings/theme", settings.SetTheme)
		router.PUT("/api/settings/tts", settings.SetTTS)

		backup := NewBackupController(cfg.Store, cfg.Auditor)
		router.GET("/api/backup", backup.Export)
		router.POST("/api/backup", backup.Import)
	}

	// Backup schedule endpoints (if SettingsStore is available)
	if cfg.SettingsStore != nil {
		schedule := NewBackupScheduleController(cfg.SettingsStore, cfg.BackupScheduler)
		router.GET("/api/backup/schedule", schedule.GetSchedule)
		router.PUT("/api/backup/schedule", schedule.UpdateSchedule)
		router.DELETE("/api/backup/schedule", schedule.ResetSchedule)
		router.POST("/api/backup/run", schedule.RunNow)
	}

	return router
}
