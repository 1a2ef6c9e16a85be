package corpus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	corpusJSON    = `{"Génesis":{"1":{"1":"En el principio creó Dios los cielos y la tierra"}}}`
	glossaryJSON  = `{"Verbo":"Palabra divina"}`
	pericopesJSON = `{"Gn":{"1":{"1":"La creación"}}}`
)

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoader_Load(t *testing.T) {
	t.Run("loads all documents", func(t *testing.T) {
		dir := writeDocs(t, map[string]string{
			DefaultCorpusFile:    corpusJSON,
			DefaultGlossaryFile:  glossaryJSON,
			DefaultPericopesFile: pericopesJSON,
		})

		loaded, err := NewLoader(FileFetcher{Dir: dir}, DefaultDocuments()).Load(context.Background())
		require.NoError(t, err)

		assert.True(t, loaded.Index.Loaded())
		assert.Equal(t, []string{"Génesis"}, loaded.Index.ListBooks(TestamentAll))
		assert.Len(t, loaded.Index.SearchGlossary("verbo"), 1)
		require.NotNil(t, loaded.Pericopes)
		assert.Equal(t, "La creación", loaded.Pericopes["Gn"]["1"]["1"])
	})

	t.Run("missing pericopes are tolerated", func(t *testing.T) {
		dir := writeDocs(t, map[string]string{
			DefaultCorpusFile:   corpusJSON,
			DefaultGlossaryFile: glossaryJSON,
		})

		loaded, err := NewLoader(FileFetcher{Dir: dir}, DefaultDocuments()).Load(context.Background())
		require.NoError(t, err)
		assert.True(t, loaded.Index.Loaded())
		assert.Nil(t, loaded.Pericopes)
	})

	t.Run("malformed pericopes are tolerated", func(t *testing.T) {
		dir := writeDocs(t, map[string]string{
			DefaultCorpusFile:    corpusJSON,
			DefaultGlossaryFile:  glossaryJSON,
			DefaultPericopesFile: "<html>",
		})

		loaded, err := NewLoader(FileFetcher{Dir: dir}, DefaultDocuments()).Load(context.Background())
		require.NoError(t, err)
		assert.Nil(t, loaded.Pericopes)
	})

	t.Run("missing corpus fails", func(t *testing.T) {
		dir := writeDocs(t, map[string]string{DefaultGlossaryFile: glossaryJSON})

		loaded, err := NewLoader(FileFetcher{Dir: dir}, DefaultDocuments()).Load(context.Background())
		assert.Error(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("malformed glossary fails", func(t *testing.T) {
		dir := writeDocs(t, map[string]string{
			DefaultCorpusFile:   corpusJSON,
			DefaultGlossaryFile: "[1,2",
		})

		_, err := NewLoader(FileFetcher{Dir: dir}, DefaultDocuments()).Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("null corpus is not loaded", func(t *testing.T) {
		dir := writeDocs(t, map[string]string{
			DefaultCorpusFile:   "null",
			DefaultGlossaryFile: glossaryJSON,
		})

		_, err := NewLoader(FileFetcher{Dir: dir}, DefaultDocuments()).Load(context.Background())
		assert.True(t, errors.Is(err, ErrNotLoaded))
	})
}

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/" + DefaultCorpusFile:
			w.Write([]byte(corpusJSON))
		case "/data/" + DefaultGlossaryFile:
			w.Write([]byte(glossaryJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL+"/data", 5*time.Second)
	require.IsType(t, &HTTPFetcher{}, fetcher)

	loaded, err := NewLoader(fetcher, DefaultDocuments()).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, loaded.Index.Loaded())
	assert.Nil(t, loaded.Pericopes, "404 for the liturgical map is not an error")
}

func TestNewFetcher_Directory(t *testing.T) {
	fetcher := NewFetcher("./data", time.Second)
	assert.Equal(t, FileFetcher{Dir: "./data"}, fetcher)
}
