package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lectio/internal/corpus"
)

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database and corpus are available", func(t *testing.T) {
		db := setupTestDB(t)
		router := NewRouter(RouterConfig{Database: db, Corpus: testIndex(), Version: "1.1.8"})

		w := performRequest(router, "GET", "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		response := decode[HealthResponse](t, w)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.1.8", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "ok", response.Checks["corpus"])
		require.NotNil(t, response.Corpus)
		assert.Equal(t, 3, response.Corpus.Books)
		assert.Equal(t, 6, response.Corpus.Verses)
		assert.NotEmpty(t, response.Time)
	})

	t.Run("returns unhealthy when corpus is not loaded", func(t *testing.T) {
		db := setupTestDB(t)
		router := NewRouter(RouterConfig{Database: db, Corpus: corpus.NewIndex(nil, nil)})

		w := performRequest(router, "GET", "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		response := decode[HealthResponse](t, w)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "not loaded", response.Checks["corpus"])
		assert.Nil(t, response.Corpus)
	})

	t.Run("reports missing database", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := NewRouter(RouterConfig{Corpus: testIndex()})

		w := performRequest(router, "GET", "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not configured", decode[HealthResponse](t, w).Checks["database"])
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterConfig{})

	w := performRequest(router, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
