package http

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/settingsstore"
)

// BackupScheduleController handles periodic backup settings and operations
type BackupScheduleController struct {
	settingsStore *settingsstore.SettingsStore
	scheduler     BackupRunner
}

func NewBackupScheduleController(store *settingsstore.SettingsStore, sched BackupRunner) *BackupScheduleController {
	return &BackupScheduleController{
		settingsStore: store,
		scheduler:     sched,
	}
}

// BackupScheduleResponse is the response for GET /api/backup/schedule
type BackupScheduleResponse struct {
	Config    settingsstore.BackupConfigInfo `json:"config"`
	Status    settingsstore.BackupStatus     `json:"status"`
	NextRun   *time.Time                     `json:"next_run,omitempty"`
	IsRunning bool                           `json:"is_running"`
	Presets   []SchedulePreset               `json:"presets"`
}

// SchedulePreset is a predefined schedule option
type SchedulePreset struct {
	Label    string `json:"label"`
	Schedule string `json:"schedule"`
}

var schedulePresets = []SchedulePreset{
	{Label: "Every hour", Schedule: "0 * * * *"},
	{Label: "Every 6 hours", Schedule: "0 */6 * * *"},
	{Label: "Daily at midnight", Schedule: "0 0 * * *"},
	{Label: "Daily at 03:00", Schedule: config.DefaultBackupSchedule},
	{Label: "Weekly on Sunday", Schedule: "0 3 * * 0"},
}

// UpdateBackupScheduleRequest is the request body for PUT /api/backup/schedule
type UpdateBackupScheduleRequest struct {
	Enabled  *bool  `json:"enabled"`
	Schedule string `json:"schedule"`
}

func (bc *BackupScheduleController) response() BackupScheduleResponse {
	response := BackupScheduleResponse{
		Config:  bc.settingsStore.GetBackupConfigInfo(),
		Status:  bc.settingsStore.GetBackupStatus(),
		Presets: schedulePresets,
	}
	if bc.scheduler != nil {
		response.NextRun = bc.scheduler.GetNextRunTime()
		response.IsRunning = bc.scheduler.IsRunning()
	}
	return response
}

// GetSchedule returns the effective backup settings and the last run outcome.
// GET /api/backup/schedule
func (bc *BackupScheduleController) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, bc.response())
}

// UpdateSchedule stores overrides and reschedules the backup job.
// PUT /api/backup/schedule
func (bc *BackupScheduleController) UpdateSchedule(c *gin.Context) {
	var req UpdateBackupScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if req.Schedule != "" {
		if err := settingsstore.ValidateCronSchedule(req.Schedule); err != nil {
			respondBadRequest(c, "invalid cron schedule: "+err.Error())
			return
		}
		if err := bc.settingsStore.SetBackupSchedule(req.Schedule); err != nil {
			respondInternalError(c, err, "save backup schedule")
			return
		}
	}

	if req.Enabled != nil {
		if err := bc.settingsStore.SetBackupEnabled(*req.Enabled); err != nil {
			respondInternalError(c, err, "save backup enabled")
			return
		}
	}

	if bc.scheduler != nil {
		if err := bc.scheduler.Reschedule(); err != nil {
			respondInternalError(c, err, "reschedule backup")
			return
		}
	}

	c.JSON(http.StatusOK, bc.response())
}

// ResetSchedule clears database overrides, reverting to env/defaults
// DELETE /api/backup/schedule
func (bc *BackupScheduleController) ResetSchedule(c *gin.Context) {
	if err := bc.settingsStore.ClearBackupSettings(); err != nil {
		respondInternalError(c, err, "reset backup settings")
		return
	}

	if bc.scheduler != nil {
		if err := bc.scheduler.Reschedule(); err != nil {
			respondInternalError(c, err, "reschedule backup")
			return
		}
	}

	c.JSON(http.StatusOK, bc.response())
}

// RunNow writes a backup immediately.
// POST /api/backup/run
func (bc *BackupScheduleController) RunNow(c *gin.Context) {
	if bc.scheduler == nil {
		respondError(c, http.StatusServiceUnavailable, "backup scheduler not available", "")
		return
	}

	path, err := bc.scheduler.RunNow()
	if err != nil {
		respondInternalError(c, err, "run backup")
		return
	}

	respondSuccess(c, "backup written", gin.H{"file": filepath.Base(path)})
}
