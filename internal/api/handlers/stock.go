package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StockHandler handles HTTP requests for stock (stok)
type StockHandler struct {
	stockService service.StockServiceInterface
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService service.StockServiceInterface) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// CreateStock creates a stock item
// @Summary Create stock item
// @Description eklenisTarihi defaults to now and minStokSeviyesi to 5
// @Tags stock
// @Accept json
// @Produce json
// @Param stok body service.CreateStockRequest true "Stock item"
// @Success 201 {object} models.Stock
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /stok [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateStockRequest
	if !response.BindJSON(c, &req) {
		return
	}

	stock, err := h.stockService.Create(c, tenantID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, stock)
}

// ListStock lists the tenant's stock
// @Summary List stock
// @Tags stock
// @Produce json
// @Success 200 {array} models.Stock
// @Security BearerAuth
// @Router /stok [get]
func (h *StockHandler) ListStock(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	items, err := h.stockService.GetAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetStock returns one stock item
// @Summary Get stock item
// @Tags stock
// @Produce json
// @Param id path int true "Stock ID"
// @Success 200 {object} models.Stock
// @Failure 404 {object} response.ErrorResponse "Stock item not found"
// @Security BearerAuth
// @Router /stok/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	stock, err := h.stockService.GetByID(c, tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// UpdateStock applies a partial update
// @Summary Update stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Stock ID"
// @Param stok body service.UpdateStockRequest true "Fields to change"
// @Success 200 {object} models.Stock
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Stock item not found"
// @Security BearerAuth
// @Router /stok/{id} [patch]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStockRequest
	if !response.BindJSON(c, &req) {
		return
	}

	stock, err := h.stockService.Update(c, tenantID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// AdjustQuantity moves adet up or down by one
// @Summary Adjust stock quantity
// @Description increment adds one; decrement removes one and stops at zero
// @Tags stock
// @Produce json
// @Param id path int true "Stock ID"
// @Param operation path string true "increment or decrement"
// @Success 200 {object} models.Stock
// @Failure 400 {object} response.ErrorResponse "Unknown operation"
// @Failure 404 {object} response.ErrorResponse "Stock item not found"
// @Security BearerAuth
// @Router /stok/{id}/adet/{operation} [patch]
func (h *StockHandler) AdjustQuantity(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	stock, err := h.stockService.AdjustQuantity(c, tenantID, id, c.Param("operation"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// DeleteStock removes a stock item
// @Summary Delete stock item
// @Tags stock
// @Param id path int true "Stock ID"
// @Success 204 "Stock item deleted"
// @Failure 404 {object} response.ErrorResponse "Stock item not found"
// @Security BearerAuth
// @Router /stok/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.stockService.Delete(c, tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllStock removes every stock item of the tenant
// @Summary Delete all stock
// @Tags stock
// @Produce json
// @Success 200 {object} service.DeleteAllResponse
// @Security BearerAuth
// @Router /stok/delAll [delete]
func (h *StockHandler) DeleteAllStock(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, err := h.stockService.DeleteAll(c, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
