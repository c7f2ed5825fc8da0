package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler manages webhook registrations and manual triggers
type WebhookHandler struct {
	webhookService service.WebhookServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookService service.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// RegisterWebhook subscribes a URL to a set of events
// @Summary Register webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param webhook body service.RegisterWebhookRequest true "Webhook registration"
// @Success 201 {object} service.RegisterWebhookResponse
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /webhook/register [post]
func (h *WebhookHandler) RegisterWebhook(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.RegisterWebhookRequest
	if !response.BindJSON(c, &req) {
		return
	}

	result, err := h.webhookService.Register(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListWebhooks lists the tenant's registrations
// @Summary List webhooks
// @Tags webhooks
// @Produce json
// @Success 200 {array} models.Webhook
// @Security BearerAuth
// @Router /webhook [get]
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	webhooks, err := h.webhookService.GetAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, webhooks)
}

// GetWebhook returns one registration
// @Summary Get webhook
// @Tags webhooks
// @Produce json
// @Param id path int true "Webhook ID"
// @Success 200 {object} models.Webhook
// @Failure 404 {object} response.ErrorResponse "Webhook not found"
// @Security BearerAuth
// @Router /webhook/{id} [get]
func (h *WebhookHandler) GetWebhook(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	webhook, err := h.webhookService.GetByID(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, webhook)
}

// UpdateWebhook changes the URL or the events of a registration
// @Summary Update webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path int true "Webhook ID"
// @Param webhook body service.UpdateWebhookRequest true "Fields to change"
// @Success 200 {object} models.Webhook
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Webhook not found"
// @Security BearerAuth
// @Router /webhook/{id} [patch]
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWebhookRequest
	if !response.BindJSON(c, &req) {
		return
	}

	webhook, err := h.webhookService.Update(c, tenantID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, webhook)
}

// DeleteWebhook removes a registration
// @Summary Delete webhook
// @Tags webhooks
// @Param id path int true "Webhook ID"
// @Success 204 "Webhook deleted"
// @Failure 404 {object} response.ErrorResponse "Webhook not found"
// @Security BearerAuth
// @Router /webhook/{id} [delete]
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.webhookService.Delete(c, tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TriggerWebhook delivers an arbitrary payload to every subscriber of event
// @Summary Trigger webhook event
// @Description Any JSON body is forwarded as the event data
// @Tags webhooks
// @Accept json
// @Produce json
// @Param event path string true "Event name"
// @Param data body object false "Event data"
// @Success 200 {object} service.TriggerResponse
// @Security BearerAuth
// @Router /webhook/trigger/{event} [post]
func (h *WebhookHandler) TriggerWebhook(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var data interface{}
	if !bindOptionalJSON(c, &data) {
		return
	}

	result, err := h.webhookService.Trigger(c, tenantID, c.Param("event"), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
