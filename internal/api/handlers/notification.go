package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's notifications and their preferences
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications lists the caller's notifications, newest first
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	tenantID, username, ok := requireRecipient(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.List(c, tenantID, username)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead marks one of the caller's notifications read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} service.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	tenantID, username, ok := requireRecipient(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c, tenantID, username, id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
}

// DeleteNotification removes one of the caller's notifications
// @Summary Delete notification
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 204 "Notification deleted"
// @Failure 404 {object} response.ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	tenantID, username, ok := requireRecipient(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c, tenantID, username, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllRead marks every unread notification of the caller read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} service.MarkAllReadResponse
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	tenantID, username, ok := requireRecipient(c)
	if !ok {
		return
	}

	result, err := h.notificationService.MarkAllRead(c, tenantID, username)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPreferences returns the caller's notification toggles, creating the defaults on first access
// @Summary Get notification preferences
// @Tags notifications
// @Produce json
// @Success 200 {object} models.NotificationPreference
// @Security BearerAuth
// @Router /notification-preferences [get]
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	tenantID, username, ok := requireRecipient(c)
	if !ok {
		return
	}

	prefs, err := h.notificationService.GetPreferences(c, tenantID, username)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences applies a partial update of the toggles
// @Summary Update notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param preferences body service.UpdatePreferencesRequest true "Toggles to change"
// @Success 200 {object} models.NotificationPreference
// @Security BearerAuth
// @Router /notification-preferences [patch]
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	tenantID, username, ok := requireRecipient(c)
	if !ok {
		return
	}

	var req service.UpdatePreferencesRequest
	if !response.BindJSON(c, &req) {
		return
	}

	prefs, err := h.notificationService.UpdatePreferences(c, tenantID, username, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
