package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes (teklif)
type QuoteHandler struct {
	quoteService service.QuoteServiceInterface
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService service.QuoteServiceInterface) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// CreateQuote creates a quote with its work items
// @Summary Create a quote
// @Description Create a quote and its work items in one transaction. km and modelYili are optional.
// @Tags quotes
// @Accept json
// @Produce json
// @Param teklif body service.CreateQuoteRequest true "Quote data"
// @Success 201 {object} models.Quote "Created quote"
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Referenced stock item not found"
// @Security BearerAuth
// @Router /teklif [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateQuoteRequest
	if !response.BindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.Create(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// ListQuotes lists the tenant's quotes
// @Summary List quotes
// @Description List the tenant's quotes with their work items, ordered by teklif id
// @Tags quotes
// @Produce json
// @Success 200 {array} models.Quote
// @Security BearerAuth
// @Router /teklif [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.GetAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// GetQuote returns one quote. Also serves GET /teklif/{id}/yapilanlar.
// @Summary Get quote
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} models.Quote
// @Failure 404 {object} response.ErrorResponse "Quote not found"
// @Security BearerAuth
// @Router /teklif/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	quote, err := h.quoteService.GetByID(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// UpdateQuote applies a partial update
// @Summary Update quote
// @Description Only fields present in the body change
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param teklif body service.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} models.Quote
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Quote not found"
// @Security BearerAuth
// @Router /teklif/{id} [patch]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
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

	quote, err := h.quoteService.Update(c, tenantID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ReplaceWorkItems replaces the quote's work items. Also serves POST /teklif/update-teklif/{id}.
// @Summary Replace quote work items
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param yapilanlar body []service.WorkItemInput true "Complete list of work items"
// @Success 200 {object} models.Quote
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Quote not found"
// @Security BearerAuth
// @Router /teklif/{id}/yapilanlar [patch]
func (h *QuoteHandler) ReplaceWorkItems(c *gin.Context) {
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

	quote, err := h.quoteService.ReplaceWorkItems(c, tenantID, id, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// DeleteQuote removes a quote and its work items
// @Summary Delete quote
// @Tags quotes
// @Param id path int true "Quote ID"
// @Success 204 "Quote deleted"
// @Failure 404 {object} response.ErrorResponse "Quote not found"
// @Security BearerAuth
// @Router /teklif/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.quoteService.Delete(c, tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllQuotes removes every quote of the tenant
// @Summary Delete all quotes
// @Tags quotes
// @Produce json
// @Success 200 {object} service.DeleteAllResponse
// @Security BearerAuth
// @Router /teklif/delAll [delete]
func (h *QuoteHandler) DeleteAllQuotes(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, err := h.quoteService.DeleteAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ConvertToCard turns a quote into a job card
// @Summary Convert quote to card
// @Description Copy the vehicle fields and work items into a new card and delete the quote, in one transaction
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 201 {object} models.Card "Created card"
// @Failure 404 {object} response.ErrorResponse "Quote not found"
// @Security BearerAuth
// @Router /teklif/{id}/convert [post]
func (h *QuoteHandler) ConvertToCard(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	card, err := h.quoteService.ConvertToCard(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}
