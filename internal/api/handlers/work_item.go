package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkItemHandler handles HTTP requests for work items (yapilanlar)
type WorkItemHandler struct {
	workItemService service.WorkItemServiceInterface
}

// NewWorkItemHandler creates a new work item handler
func NewWorkItemHandler(workItemService service.WorkItemServiceInterface) *WorkItemHandler {
	return &WorkItemHandler{workItemService: workItemService}
}

// CreateWorkItem creates a work item
// @Summary Create a work item
// @Description A referenced card or quote must belong to the caller's tenant
// @Tags work-items
// @Accept json
// @Produce json
// @Param item body service.CreateWorkItemRequest true "Work item"
// @Success 201 {object} models.WorkItem
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Card, quote or stock item not found"
// @Security BearerAuth
// @Router /yapilanlar [post]
func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateWorkItemRequest
	if !response.BindJSON(c, &req) {
		return
	}

	item, err := h.workItemService.Create(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListWorkItems lists the tenant's work items
// @Summary List work items
// @Tags work-items
// @Produce json
// @Success 200 {array} models.WorkItem
// @Security BearerAuth
// @Router /yapilanlar [get]
func (h *WorkItemHandler) ListWorkItems(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	items, err := h.workItemService.GetAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetWorkItem returns one work item
// @Summary Get work item
// @Tags work-items
// @Produce json
// @Param id path int true "Work item ID"
// @Success 200 {object} models.WorkItem
// @Failure 404 {object} response.ErrorResponse "Work item not found"
// @Security BearerAuth
// @Router /yapilanlar/{id} [get]
func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.workItemService.GetByID(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateWorkItem applies a partial update
// @Summary Update work item
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path int true "Work item ID"
// @Param item body service.UpdateWorkItemRequest true "Fields to change"
// @Success 200 {object} models.WorkItem
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Work item not found"
// @Security BearerAuth
// @Router /yapilanlar/{id} [patch]
func (h *WorkItemHandler) UpdateWorkItem(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWorkItemRequest
	if !response.BindJSON(c, &req) {
		return
	}

	item, err := h.workItemService.Update(c, tenantID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteWorkItem removes a work item
// @Summary Delete work item
// @Tags work-items
// @Param id path int true "Work item ID"
// @Success 204 "Work item deleted"
// @Failure 404 {object} response.ErrorResponse "Work item not found"
// @Security BearerAuth
// @Router /yapilanlar/{id} [delete]
func (h *WorkItemHandler) DeleteWorkItem(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.workItemService.Delete(c, tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
