package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/lectio/internal/annotations"
	"github.com/mrlokans/lectio/internal/audit"
	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/corpus"
	"github.com/mrlokans/lectio/internal/database"
	"github.com/mrlokans/lectio/internal/database/settings"
	http_controllers "github.com/mrlokans/lectio/internal/http"
	"github.com/mrlokans/lectio/internal/reference"
	"github.com/mrlokans/lectio/internal/scheduler"
	"github.com/mrlokans/lectio/internal/settingsstore"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// loadCorpus fetches the corpus documents. A failure is fatal: every read
// endpoint depends on the index.
func loadCorpus(cfg config.Corpus) *corpus.Loaded {
	log.Printf("Loading corpus from %s", cfg.Source)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	loader := corpus.NewLoader(corpus.NewFetcher(cfg.Source, cfg.Timeout), corpus.Documents{
		Corpus:    cfg.CorpusFile,
		Glossary:  cfg.GlossaryFile,
		Pericopes: cfg.PericopesFile,
	})
	loaded, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	stats := loaded.Index.Stats()
	log.Printf("Corpus loaded: %d books, %d chapters, %d verses, %d glossary terms",
		stats.Books, stats.Chapters, stats.Verses, stats.GlossaryTerms)
	if loaded.Pericopes == nil {
		log.Printf("WARNING: liturgical labels are disabled")
	}
	return loaded
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Lectio v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	store, err := annotations.NewStore(settings.NewRepository(db.DB), annotations.WithAppVersion(version))
	if err != nil {
		log.Fatalf("Failed to load user data: %v", err)
	}

	loaded := loadCorpus(cfg.Corpus)
	resolver := reference.NewResolver(loaded.Index, loaded.Pericopes)

	// Create auditor for saving imported backup documents
	auditor := audit.NewAuditor(cfg.Audit.Dir)

	// Backup settings saved through the API take precedence over the environment
	settingsStore := settingsstore.New(db, cfg.Backup)
	backupScheduler := scheduler.NewBackupScheduler(store, settingsStore)

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	if err := backupScheduler.Start(schedulerCtx); err != nil {
		log.Printf("WARNING: backup scheduler not started: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Corpus:          loaded.Index,
		Resolver:        resolver,
		Store:           store,
		Database:        db,
		Auditor:         auditor,
		SettingsStore:   settingsStore,
		BackupScheduler: backupScheduler,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		backupScheduler.Stop()
		schedulerCancel()
	}

	Serve(router, cfg, onShutdown)
}
