package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Corpus
		Backup
		Audit
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}
	Corpus struct {
		Source        string // Directory or http(s) base URL holding the documents
		CorpusFile    string
		GlossaryFile  string
		PericopesFile string // Optional; empty disables liturgical labels
		Timeout       time.Duration
	}
	Backup struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
		Dir      string
		Keep     int // Number of backup files to retain, 0 keeps all
	}
	Audit struct {
		Dir string
	}
)

// getPericopesFile returns the liturgical map file name. The value "none"
// disables liturgical labels.
func getPericopesFile(v *viper.Viper) string {
	file := v.GetString("PERICOPES_FILE")
	if file == "none" {
		return ""
	}
	return file
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("corpus_source", DefaultCorpusSource)
	v.SetDefault("corpus_file", "bibles_rv1960.json")
	v.SetDefault("glossary_file", "dictionary.json")
	v.SetDefault("pericopes_file", "pericopes.json")
	v.SetDefault("corpus_timeout", "30s")

	v.SetDefault("backup_enabled", false)
	v.SetDefault("backup_schedule", DefaultBackupSchedule)
	v.SetDefault("backup_dir", "./backups")
	v.SetDefault("backup_keep", 14)

	v.SetDefault("audit_dir", "./audit")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Corpus: Corpus{
			Source:        v.GetString("CORPUS_SOURCE"),
			CorpusFile:    v.GetString("CORPUS_FILE"),
			GlossaryFile:  v.GetString("GLOSSARY_FILE"),
			PericopesFile: getPericopesFile(v),
			Timeout:       v.GetDuration("CORPUS_TIMEOUT"),
		},
		Backup: Backup{
			Enabled:  v.GetBool("BACKUP_ENABLED"),
			Schedule: v.GetString("BACKUP_SCHEDULE"),
			Dir:      v.GetString("BACKUP_DIR"),
			Keep:     v.GetInt("BACKUP_KEEP"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
	}
}
