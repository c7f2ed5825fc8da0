package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CardHandler handles HTTP requests for job cards
type CardHandler struct {
	cardService service.CardServiceInterface
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService service.CardServiceInterface) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// CreateCard creates a job card with its work items
// @Summary Create a job card
// @Description Create a job card and its work items in one transaction.
// @Description Empty adSoyad, markaModel, plaka, sasi and girisTarihi are stored as "Tanımsız".
// @Tags cards
// @Accept json
// @Produce json
// @Param card body service.CreateCardRequest true "Card data"
// @Success 201 {object} models.Card "Created card"
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Referenced stock item not found"
// @Security BearerAuth
// @Router /card [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateCardRequest
	if !response.BindJSON(c, &req) {
		return
	}

	card, err := h.cardService.Create(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// ListCards lists the tenant's cards
// @Summary List job cards
// @Description List the tenant's cards with their work items, ordered by card id
// @Tags cards
// @Produce json
// @Success 200 {array} models.Card
// @Security BearerAuth
// @Router /card [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	cards, err := h.cardService.GetAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// GetCard returns one card. Also serves GET /card/{id}/yapilanlar.
// @Summary Get job card
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.Card
// @Failure 404 {object} response.ErrorResponse "Card not found"
// @Security BearerAuth
// @Router /card/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	card, err := h.cardService.GetByID(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// UpdateCard applies a partial update
// @Summary Update job card
// @Description Only fields present in the body change
// @Tags cards
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param card body service.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} models.Card
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Card not found"
// @Security BearerAuth
// @Router /card/{id} [patch]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVehicleRequest
	if !response.BindJSON(c, &req) {
		return
	}

	card, err := h.cardService.Update(c, tenantID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// ReplaceWorkItems replaces the card's work items. Also serves POST /card/update-card/{id}.
// @Summary Replace card work items
// @Tags cards
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param yapilanlar body []service.WorkItemInput true "Complete list of work items"
// @Success 200 {object} models.Card
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Card not found"
// @Security BearerAuth
// @Router /card/{id}/yapilanlar [patch]
func (h *CardHandler) ReplaceWorkItems(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var items []service.WorkItemInput
	if !response.BindJSON(c, &items) {
		return
	}

	card, err := h.cardService.ReplaceWorkItems(c, tenantID, id, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard removes a card and its work items
// @Summary Delete job card
// @Tags cards
// @Param id path int true "Card ID"
// @Success 204 "Card deleted"
// @Failure 404 {object} response.ErrorResponse "Card not found"
// @Security BearerAuth
// @Router /card/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cardService.Delete(c, tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllCards removes every card of the tenant
// @Summary Delete all job cards
// @Tags cards
// @Produce json
// @Success 200 {object} service.DeleteAllResponse
// @Security BearerAuth
// @Router /card/delAll [delete]
func (h *CardHandler) DeleteAllCards(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, err := h.cardService.DeleteAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
