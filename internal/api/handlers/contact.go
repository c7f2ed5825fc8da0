package handlers

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler accepts messages from the public contact form
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SendMessage forwards a contact form message to the administrator
// @Summary Send contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body service.ContactRequest true "Contact message"
// @Success 201 {object} service.ContactResponse
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Router /contact [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req service.ContactRequest
	if !response.BindJSON(c, &req) {
		return
	}

	result, err := h.contactService.Send(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
