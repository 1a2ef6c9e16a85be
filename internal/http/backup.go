package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lectio/internal/annotations"
	"github.com/mrlokans/lectio/internal/audit"
	"github.com/mrlokans/lectio/internal/entities"
	"github.com/mrlokans/lectio/internal/utils"
)

// ImportResponse summarizes an applied backup.
type ImportResponse struct {
	Favorites  int    `json:"favorites"`
	Notes      int    `json:"notes"`
	Highlights int    `json:"highlights"`
	AuditFile  string `json:"audit_file,omitempty"`
}

type BackupController struct {
	store   BackupStore
	auditor *audit.Auditor
}

func NewBackupController(store BackupStore, auditor *audit.Auditor) *BackupController {
	return &BackupController{store: store, auditor: auditor}
}

// Export returns all user data as a downloadable backup document.
// GET /api/backup
func (bc *BackupController) Export(c *gin.Context) {
	backup, err := bc.store.ExportUserData()
	if err != nil {
		respondInternalError(c, err, "export backup")
		return
	}

	name := fmt.Sprintf("lectio-backup %s %s", backup.AppVersion, backup.ExportDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.json"`, utils.SanitizeFilename(name)))
	c.IndentedJSON(http.StatusOK, backup)
}

// Import replaces user data with the posted backup document. A valid payload
// is audited before it is applied; rejected ones are not recorded.
// POST /api/backup
func (bc *BackupController) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "failed to read request body")
		return
	}

	var backup entities.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		respondError(c, http.StatusBadRequest, "invalid backup format: "+err.Error(), codeInvalidFormat)
		return
	}
	if err := annotations.ValidateBackup(&backup); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), codeInvalidFormat)
		return
	}

	auditFile, err := bc.auditor.Record("backup_import", json.RawMessage(raw))
	if err != nil {
		// Log but don't fail the request
		c.Writer.Header().Set("X-Audit-Warning", "Failed to save audit log")
	}

	if err := bc.store.ImportUserData(&backup); err != nil {
		if errors.Is(err, annotations.ErrInvalidFormat) {
			respondError(c, http.StatusBadRequest, err.Error(), codeInvalidFormat)
			return
		}
		respondInternalError(c, err, "import backup")
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Favorites:  len(backup.Data.Favorites),
		Notes:      len(backup.Data.Notes),
		Highlights: len(backup.Data.Highlights),
		AuditFile:  auditFile,
	})
}
