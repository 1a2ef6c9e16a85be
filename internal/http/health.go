package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Corpus  *corpus.Stats     `json:"corpus,omitempty"`
}

type HealthController struct {
	db      *database.Database
	corpus  CorpusReader
	version string
}

func NewHealthController(db *database.Database, reader CorpusReader, version string) *HealthController {
	return &HealthController{
		db:      db,
		corpus:  reader,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	var stats *corpus.Stats
	if h.corpus != nil && h.corpus.Loaded() {
		checks["corpus"] = "ok"
		s := h.corpus.Stats()
		stats = &s
	} else {
		checks["corpus"] = "not loaded"
		status = "unhealthy"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
		Corpus:  stats,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
