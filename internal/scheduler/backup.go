package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mrlokans/lectio/internal/entities"
	"github.com/mrlokans/lectio/internal/settingsstore"
	"github.com/robfig/cron/v3"
)

const (
	backupPrefix     = "backup-"
	backupSuffix     = ".json"
	backupTimeLayout = "20060102T150405.000Z"
)

// Exporter produces the backup document written on every run.
type Exporter interface {
	ExportUserData() (*entities.Backup, error)
}

// BackupScheduler periodically writes user data backups to a directory
type BackupScheduler struct {
	exporter Exporter
	settings *settingsstore.SettingsStore
	now      func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	parent     context.Context
	cancelFunc context.CancelFunc

	// serializes runs triggered by cron and by RunNow
	runMu sync.Mutex
}

// NewBackupScheduler creates a new scheduler instance
func NewBackupScheduler(exporter Exporter, settings *settingsstore.SettingsStore) *BackupScheduler {
	return &BackupScheduler{
		exporter: exporter,
		settings: settings,
		now:      time.Now,
	}
}

// Start begins the scheduler if backups are enabled
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	s.parent = ctx

	config := s.settings.GetBackupConfig()

	if !config.Enabled {
		log.Printf("Backup scheduler: disabled")
		return nil
	}

	if config.Dir == "" {
		log.Printf("Backup scheduler: backup directory not configured, skipping")
		return nil
	}

	if err := settingsstore.ValidateCronSchedule(config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", config.Schedule, err)
	}

	s.cron = cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)))
	entryID, err := s.cron.AddFunc(config.Schedule, s.runBackup)
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := settingsstore.GetNextRunTime(config.Schedule, s.now())
	log.Printf("Backup scheduler: started with schedule '%s' (%s). Next run: %v",
		config.Schedule,
		settingsstore.GetCronDescription(config.Schedule),
		nextRun)

	// Stop when the caller's context ends, but not when Stop cancelled us.
	go func() {
		<-cancelCtx.Done()
		if ctx.Err() != nil {
			s.Stop()
		}
	}()

	return nil
}

// Stop waits for a running backup to finish and stops the scheduler
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Backup scheduler: stopped")
}

// Reschedule restarts the scheduler with the current settings
func (s *BackupScheduler) Reschedule() error {
	s.Stop()

	s.mu.RLock()
	parent := s.parent
	s.mu.RUnlock()
	if parent == nil {
		parent = context.Background()
	}
	return s.Start(parent)
}

// RunNow performs a backup immediately and returns the written file path.
// The outcome is recorded in the backup status either way.
func (s *BackupScheduler) RunNow() (string, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	config := s.settings.GetBackupConfig()
	if config.Dir == "" {
		err := fmt.Errorf("backup directory not configured")
		_ = s.settings.SetBackupStatus(settingsstore.StatusFailed, err.Error())
		return "", err
	}

	backup, err := s.exporter.ExportUserData()
	if err != nil {
		err = fmt.Errorf("export failed: %w", err)
		_ = s.settings.SetBackupStatus(settingsstore.StatusFailed, err.Error())
		return "", err
	}

	path, err := WriteBackup(config.Dir, backup, s.now())
	if err != nil {
		_ = s.settings.SetBackupStatus(settingsstore.StatusFailed, err.Error())
		return "", err
	}

	removed, err := Prune(config.Dir, config.Keep)
	if err != nil {
		log.Printf("Backup: warning - failed to prune old backups: %v", err)
	}

	msg := fmt.Sprintf("Wrote %s (%d favorites, %d notes, %d highlights), pruned %d",
		filepath.Base(path), len(backup.Data.Favorites), len(backup.Data.Notes),
		len(backup.Data.Highlights), len(removed))
	_ = s.settings.SetBackupStatus(settingsstore.StatusSuccess, msg)
	return path, nil
}

// IsRunning returns whether the scheduler is active
func (s *BackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next backup will occur
func (s *BackupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *BackupScheduler) runBackup() {
	startTime := s.now()
	path, err := s.RunNow()
	if err != nil {
		log.Printf("Backup: failed: %v", err)
		return
	}
	log.Printf("Backup: wrote %s in %v", path, time.Since(startTime).Round(time.Millisecond))
}

// WriteBackup writes backup as indented JSON into dir, named after at.
func WriteBackup(dir string, backup *entities.Backup, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	path := filepath.Join(dir, backupPrefix+at.UTC().Format(backupTimeLayout)+backupSuffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

// ListBackups returns the backup files in dir, oldest first.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Prune removes the oldest backups so that at most keep remain.
// keep <= 0 retains everything.
func Prune(dir string, keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}

	paths, err := ListBackups(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) <= keep {
		return nil, nil
	}

	var removed []string
	for _, path := range paths[:len(paths)-keep] {
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed = append(removed, path)
	}
	return removed, nil
}
