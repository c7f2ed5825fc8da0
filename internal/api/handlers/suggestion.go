package handlers

import (
	"context"
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/database/models"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles HTTP requests for improvement suggestions (oneri)
type SuggestionHandler struct {
	suggestionService service.SuggestionServiceInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService service.SuggestionServiceInterface) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// CreateSuggestion submits a suggestion on behalf of the caller
// @Summary Submit suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Param oneri body service.CreateSuggestionRequest true "Suggestion"
// @Success 201 {object} models.Suggestion
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /oneri [post]
func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateSuggestionRequest
	if !response.BindJSON(c, &req) {
		return
	}

	suggestion, err := h.suggestionService.Create(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

// ListSuggestions lists the tenant's suggestions, newest first
// @Summary List suggestions
// @Tags suggestions
// @Produce json
// @Success 200 {array} models.Suggestion
// @Security BearerAuth
// @Router /oneri [get]
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestionService.GetAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// GetSuggestion returns one suggestion
// @Summary Get suggestion
// @Tags suggestions
// @Produce json
// @Param id path int true "Suggestion ID"
// @Success 200 {object} models.Suggestion
// @Failure 404 {object} response.ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /oneri/{id} [get]
func (h *SuggestionHandler) GetSuggestion(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	suggestion, err := h.suggestionService.GetByID(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// UpdateSuggestion edits one of the tenant's suggestions
// @Summary Update suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path int true "Suggestion ID"
// @Param oneri body service.UpdateSuggestionRequest true "Fields to change"
// @Success 200 {object} models.Suggestion
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /oneri/{id} [patch]
func (h *SuggestionHandler) UpdateSuggestion(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSuggestionRequest
	if !response.BindJSON(c, &req) {
		return
	}

	suggestion, err := h.suggestionService.Update(c, tenantID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// DeleteSuggestion removes a suggestion
// @Summary Delete suggestion
// @Tags suggestions
// @Param id path int true "Suggestion ID"
// @Success 204 "Suggestion deleted"
// @Failure 404 {object} response.ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /oneri/{id} [delete]
func (h *SuggestionHandler) DeleteSuggestion(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.suggestionService.Delete(c, tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListForReview lists suggestions of every tenant
// @Summary List suggestions for review
// @Tags admin
// @Produce json
// @Success 200 {array} models.Suggestion
// @Failure 403 {object} response.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /admin/oneriler [get]
func (h *SuggestionHandler) ListForReview(c *gin.Context) {
	suggestions, err := h.suggestionService.ListForReview(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// ApproveSuggestion approves a suggestion and notifies its author
// @Summary Approve suggestion
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Suggestion ID"
// @Param review body service.ReviewSuggestionRequest false "Optional admin response"
// @Success 200 {object} models.Suggestion
// @Failure 404 {object} response.ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /admin/oneriler/{id}/approve [patch]
func (h *SuggestionHandler) ApproveSuggestion(c *gin.Context) {
	h.review(c, h.suggestionService.Approve)
}

// RejectSuggestion rejects a suggestion and notifies its author
// @Summary Reject suggestion
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Suggestion ID"
// @Param review body service.ReviewSuggestionRequest false "Optional admin response"
// @Success 200 {object} models.Suggestion
// @Failure 404 {object} response.ErrorResponse "Suggestion not found"
// @Security BearerAuth
// @Router /admin/oneriler/{id}/reject [patch]
func (h *SuggestionHandler) RejectSuggestion(c *gin.Context) {
	h.review(c, h.suggestionService.Reject)
}

type suggestionDecision func(ctx context.Context, id int64, req *service.ReviewSuggestionRequest) (*models.Suggestion, error)

func (h *SuggestionHandler) review(c *gin.Context, decide suggestionDecision) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.ReviewSuggestionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	suggestion, err := decide(c, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
