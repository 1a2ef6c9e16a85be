package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mrlokans/lectio/internal/annotations"
	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/database"
	"github.com/mrlokans/lectio/internal/database/settings"
)

// corpusFlags holds the options shared by commands that read the corpus. The
// configured values are the flag defaults.
type corpusFlags config.Corpus

func (f *corpusFlags) register(fs *flag.FlagSet) {
	defaults := *f
	fs.StringVar(&f.Source, "source", defaults.Source, "Directory or http(s) base URL holding the corpus documents")
	fs.StringVar(&f.CorpusFile, "corpus-file", defaults.CorpusFile, "Corpus document name")
	fs.StringVar(&f.GlossaryFile, "glossary-file", defaults.GlossaryFile, "Glossary document name")
	fs.StringVar(&f.PericopesFile, "pericopes-file", defaults.PericopesFile, "Liturgical map document name (empty disables labels)")
	fs.DurationVar(&f.Timeout, "timeout", defaults.Timeout, "Timeout for loading the documents")
}

func (f *corpusFlags) load() (*corpus.Loaded, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	loader := corpus.NewLoader(corpus.NewFetcher(f.Source, timeout), corpus.Documents{
		Corpus:    f.CorpusFile,
		Glossary:  f.GlossaryFile,
		Pericopes: f.PericopesFile,
	})
	return loader.Load(ctx)
}

// openStore opens the user data database and loads the annotation store from
// it. The caller closes the returned database.
func openStore(dbPath, logLevel, version string) (*annotations.Store, *database.Database, error) {
	db, err := database.NewDatabase(dbPath, database.ParseLogLevel(logLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	store, err := annotations.NewStore(settings.NewRepository(db.DB), annotations.WithAppVersion(version))
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to load user data: %w", err)
	}
	return store, db, nil
}
