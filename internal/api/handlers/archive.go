package handlers

import (
	"net/http"
	"strconv"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultCardArchiveDays = 365
	defaultLogArchiveDays  = 90
)

// ArchiveHandler runs the age based archive operations
type ArchiveHandler struct {
	archiveService service.ArchiveServiceInterface
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(archiveService service.ArchiveServiceInterface) *ArchiveHandler {
	return &ArchiveHandler{archiveService: archiveService}
}

// ArchiveCards counts cards that entered before the cutoff
// @Summary Archive old cards
// @Tags archive
// @Produce json
// @Param daysOld path int true "Age in days, 365 when not a number"
// @Success 200 {object} service.ArchiveCardsResponse
// @Failure 400 {object} response.ErrorResponse "daysOld must be positive"
// @Security BearerAuth
// @Router /archive/cards/{daysOld} [post]
func (h *ArchiveHandler) ArchiveCards(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, err := h.archiveService.ArchiveCards(c, tenantID, daysOld(c, defaultCardArchiveDays))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ArchiveLogs deletes log rows older than the cutoff
// @Summary Archive old activity logs
// @Tags archive
// @Produce json
// @Param daysOld path int true "Age in days, 90 when not a number"
// @Success 200 {object} service.ArchiveLogsResponse
// @Failure 400 {object} response.ErrorResponse "daysOld must be positive"
// @Security BearerAuth
// @Router /archive/logs/{daysOld} [post]
func (h *ArchiveHandler) ArchiveLogs(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, err := h.archiveService.ArchiveLogs(c, tenantID, daysOld(c, defaultLogArchiveDays))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func daysOld(c *gin.Context, fallback int) int {
	days, err := strconv.Atoi(c.Param("daysOld"))
	if err != nil {
		return fallback
	}
	return days
}
