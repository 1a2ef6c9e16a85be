package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/lectio/internal/annotations"
	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/database"
	"github.com/mrlokans/lectio/internal/database/settings"
	"github.com/mrlokans/lectio/internal/reference"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath, logger.Silent)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

// setupTestStore returns an annotation store persisted to a temporary database.
func setupTestStore(t *testing.T) (*annotations.Store, *database.Database) {
	t.Helper()
	db := setupTestDB(t)
	store, err := annotations.NewStore(settings.NewRepository(db.DB), annotations.WithAppVersion("1.1.8"))
	require.NoError(t, err)
	return store, db
}

func testIndex() *corpus.Index {
	return corpus.NewIndex(
		corpus.Document{
			"Génesis": {
				"1": {
					"1": "En el principio creó Dios los cielos y la tierra.",
					"2": "Y la tierra estaba desordenada y vacía.",
					"3": "Y dijo Dios: Sea la luz; y fue la luz.",
				},
				"2": {"1": "Fueron, pues, acabados los cielos y la tierra."},
			},
			"Salmos":   {"36": {"5": "Jehová, hasta los cielos llega tu misericordia."}},
			"San Juan": {"3": {"16": "Porque de tal manera amó Dios al mundo."}},
		},
		corpus.Glossary{
			"Maná":  "Pan del cielo dado en el desierto.",
			"Verbo": "La Palabra de Dios.",
		},
		corpus.WithRandom(func(int) int { return 0 }),
	)
}

func testLabels() corpus.Document {
	return corpus.Document{
		"Genesis":  {"1": {"1": "La creación"}},
		"S. Juan":  {"3": {"16": "El amor de Dios"}},
		"Apocalip": {"1": {"1": "Revelación"}},
	}
}

func testResolver(ix *corpus.Index) *reference.Resolver {
	return reference.NewResolver(ix, testLabels())
}

func performRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
