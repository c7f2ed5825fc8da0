package handlers

import (
	"fmt"
	"net/http"
	"time"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BackupHandler exports and restores tenant snapshots
type BackupHandler struct {
	backupService service.BackupServiceInterface
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService service.BackupServiceInterface) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// CreateBackup exports the tenant's cards, quotes and stock as a downloadable document
// @Summary Create backup
// @Tags backup
// @Produce json
// @Success 200 {object} service.BackupDocument
// @Security BearerAuth
// @Router /backup/create [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	doc, err := h.backupService.Create(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("backup-%d-%s.json", tenantID, time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// RestoreBackup validates a backup document and inserts its rows under the caller's tenant
// @Summary Restore backup
// @Description The document is checked against a JSON Schema before anything is written
// @Tags backup
// @Accept json
// @Produce json
// @Param backup body service.BackupDocument true "Backup document"
// @Success 200 {object} service.RestoreResponse
// @Failure 400 {object} response.ErrorResponse "Invalid backup document"
// @Security BearerAuth
// @Router /backup/restore [post]
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	result, err := h.backupService.Restore(c, tenantID, payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListBackups lists stored backups
// @Summary List backups
// @Tags backup
// @Produce json
// @Success 200 {array} service.BackupInfo
// @Security BearerAuth
// @Router /backup/list [get]
func (h *BackupHandler) ListBackups(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	backups, err := h.backupService.List(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, backups)
}
