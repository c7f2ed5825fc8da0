package handlers

import (
	"net/http"
	"strconv"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityLogHandler exposes the tenant's audit trail
type ActivityLogHandler struct {
	logService service.ActivityLogServiceInterface
}

// NewActivityLogHandler creates a new activity log handler
func NewActivityLogHandler(logService service.ActivityLogServiceInterface) *ActivityLogHandler {
	return &ActivityLogHandler{logService: logService}
}

// RecentActivity returns the newest audit entries
// @Summary Recent activity
// @Description The limit defaults to 100 and is capped at 500
// @Tags activity-log
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} models.ActivityLog
// @Security BearerAuth
// @Router /log/son-hareketler [get]
func (h *ActivityLogHandler) RecentActivity(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	// non-numeric limits fall through to the service default
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.logService.Recent(c, tenantID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateEntry records a client supplied audit entry
// @Summary Create log entry
// @Tags activity-log
// @Accept json
// @Produce json
// @Param entry body service.CreateLogRequest true "Log entry"
// @Success 201 {object} service.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /log/create [post]
func (h *ActivityLogHandler) CreateEntry(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateLogRequest
	if !response.BindJSON(c, &req) {
		return
	}

	result, err := h.logService.Create(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
