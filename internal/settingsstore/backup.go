package settingsstore

import (
	"strconv"
	"time"

	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/entities"
	"github.com/robfig/cron/v3"
)

// BackupConfig is the effective configuration of the backup scheduler.
type BackupConfig struct {
	Enabled  bool   `json:"enabled"`
	Schedule string `json:"schedule"`
	Dir      string `json:"dir"`
	Keep     int    `json:"keep"`
}

// BackupConfigInfo includes source information for the overridable fields
type BackupConfigInfo struct {
	Enabled       bool   `json:"enabled"`
	EnabledSource string `json:"enabled_source"` // "database", "environment", "default"

	Schedule       string `json:"schedule"`
	ScheduleSource string `json:"schedule_source"`
	Description    string `json:"description"`

	Dir  string `json:"dir"`
	Keep int    `json:"keep"`
}

// BackupStatus represents the outcome of the last backup run
type BackupStatus struct {
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	Status    string     `json:"status,omitempty"`  // "success", "failed", ""
	Message   string     `json:"message,omitempty"` // Error message or file written
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// GetBackupEnabled returns whether periodic backups are enabled (database > env > default)
func (s *SettingsStore) GetBackupEnabled() bool {
	if value, ok := s.override(entities.SettingKeyBackupEnabled); ok {
		return value == "true" || value == "1"
	}
	return s.defaults.Enabled
}

func (s *SettingsStore) GetBackupEnabledSource() string {
	if _, ok := s.override(entities.SettingKeyBackupEnabled); ok {
		return SourceDatabase
	}
	if s.defaults.Enabled {
		return SourceEnvironment
	}
	return SourceDefault
}

func (s *SettingsStore) SetBackupEnabled(enabled bool) error {
	return s.db.SetSetting(entities.SettingKeyBackupEnabled, strconv.FormatBool(enabled))
}

// GetBackupSchedule returns the cron schedule (database > env > default)
func (s *SettingsStore) GetBackupSchedule() string {
	if value, ok := s.override(entities.SettingKeyBackupSchedule); ok {
		return value
	}
	return s.defaults.Schedule
}

func (s *SettingsStore) GetBackupScheduleSource() string {
	if _, ok := s.override(entities.SettingKeyBackupSchedule); ok {
		return SourceDatabase
	}
	if s.defaults.Schedule != config.DefaultBackupSchedule {
		return SourceEnvironment
	}
	return SourceDefault
}

// SetBackupSchedule validates and stores the schedule.
func (s *SettingsStore) SetBackupSchedule(schedule string) error {
	if err := ValidateCronSchedule(schedule); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyBackupSchedule, schedule)
}

// GetBackupConfig returns the effective configuration
func (s *SettingsStore) GetBackupConfig() BackupConfig {
	return BackupConfig{
		Enabled:  s.GetBackupEnabled(),
		Schedule: s.GetBackupSchedule(),
		Dir:      s.defaults.Dir,
		Keep:     s.defaults.Keep,
	}
}

func (s *SettingsStore) GetBackupConfigInfo() BackupConfigInfo {
	schedule := s.GetBackupSchedule()
	return BackupConfigInfo{
		Enabled:        s.GetBackupEnabled(),
		EnabledSource:  s.GetBackupEnabledSource(),
		Schedule:       schedule,
		ScheduleSource: s.GetBackupScheduleSource(),
		Description:    GetCronDescription(schedule),
		Dir:            s.defaults.Dir,
		Keep:           s.defaults.Keep,
	}
}

// GetBackupStatus returns the outcome of the last run
func (s *SettingsStore) GetBackupStatus() BackupStatus {
	status := BackupStatus{}

	if value, ok := s.override(entities.SettingKeyBackupLastAt); ok {
		if ts, err := time.Parse(time.RFC3339, value); err == nil {
			status.LastRunAt = &ts
		}
	}
	status.Status, _ = s.override(entities.SettingKeyBackupLastStatus)
	status.Message, _ = s.override(entities.SettingKeyBackupLastMessage)

	return status
}

func (s *SettingsStore) SetBackupStatus(status, message string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.db.SetSetting(entities.SettingKeyBackupLastAt, now); err != nil {
		return err
	}
	if err := s.db.SetSetting(entities.SettingKeyBackupLastStatus, status); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyBackupLastMessage, message)
}

// ClearBackupSettings removes database overrides, reverting to env/default
func (s *SettingsStore) ClearBackupSettings() error {
	return s.clear(entities.SettingKeyBackupEnabled, entities.SettingKeyBackupSchedule)
}

// ValidateCronSchedule validates a five-field cron schedule string
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// GetCronDescription returns a human-readable description of a cron schedule
func GetCronDescription(schedule string) string {
	switch schedule {
	case "0 * * * *":
		return "Every hour at :00"
	case "0 */6 * * *":
		return "Every 6 hours"
	case "0 0 * * *":
		return "Daily at midnight"
	case config.DefaultBackupSchedule:
		return "Daily at 03:00"
	case "0 3 * * 0":
		return "Weekly on Sunday at 03:00"
	default:
		return "Custom schedule: " + schedule
	}
}

// GetNextRunTime calculates when the schedule fires next after from
func GetNextRunTime(schedule string, from time.Time) (*time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(from)
	return &next, nil
}
