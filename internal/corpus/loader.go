package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Default document names, relative to the corpus source.
const (
	DefaultCorpusFile    = "bibles_rv1960.json"
	DefaultGlossaryFile  = "dictionary.json"
	DefaultPericopesFile = "pericopes.json"
)

// Fetcher retrieves a named document.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FileFetcher reads documents from a local directory.
type FileFetcher struct {
	Dir string
}

func (f FileFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(f.Dir, name))
}

// HTTPFetcher downloads documents relative to a base URL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = path.Join(u.Path, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", name, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// NewFetcher picks an HTTPFetcher for http(s) sources and a FileFetcher otherwise.
func NewFetcher(source string, timeout time.Duration) Fetcher {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFetcher(source, timeout)
	}
	return FileFetcher{Dir: source}
}

// Documents names the files the loader fetches.
type Documents struct {
	Corpus    string
	Glossary  string
	Pericopes string
}

func DefaultDocuments() Documents {
	return Documents{
		Corpus:    DefaultCorpusFile,
		Glossary:  DefaultGlossaryFile,
		Pericopes: DefaultPericopesFile,
	}
}

// Loaded is the result of a successful load. Pericopes is nil when the
// liturgical map could not be fetched or parsed.
type Loaded struct {
	Index     *Index
	Pericopes Document
}

type Loader struct {
	fetcher Fetcher
	docs    Documents
	opts    []IndexOption
}

func NewLoader(fetcher Fetcher, docs Documents, opts ...IndexOption) *Loader {
	return &Loader{fetcher: fetcher, docs: docs, opts: opts}
}

// Load fetches the three documents concurrently. The corpus and glossary are
// required; the liturgical map is optional and its failure is only logged.
func (l *Loader) Load(ctx context.Context) (*Loaded, error) {
	var (
		books     Document
		glossary  Glossary
		pericopes Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetchJSON(gctx, l.fetcher, l.docs.Corpus, &books)
	})
	g.Go(func() error {
		return fetchJSON(gctx, l.fetcher, l.docs.Glossary, &glossary)
	})
	g.Go(func() error {
		if l.docs.Pericopes == "" {
			return nil
		}
		// Uses the parent context so a required-document failure does not
		// get logged as a missing liturgical map.
		var doc Document
		if err := fetchJSON(ctx, l.fetcher, l.docs.Pericopes, &doc); err != nil {
			log.Printf("Pericopes not available, labels disabled: %v", err)
			return nil
		}
		pericopes = doc
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	if books == nil {
		return nil, fmt.Errorf("failed to load corpus: %s: %w", l.docs.Corpus, ErrNotLoaded)
	}
	if glossary == nil {
		glossary = Glossary{}
	}

	return &Loaded{
		Index:     NewIndex(books, glossary, l.opts...),
		Pericopes: pericopes,
	}, nil
}

func fetchJSON(ctx context.Context, fetcher Fetcher, name string, dst any) error {
	data, err := fetcher.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: failed to parse: %w", name, err)
	}
	return nil
}
