package handlers

import (
	"context"
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/database/models"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the caller's profile and membership plus the admin user management routes
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetProfile returns the caller's account
// @Summary Get profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.accountService.GetProfile(c, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update of the company fields
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /auth/profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if !response.BindJSON(c, &req) {
		return
	}

	user, err := h.accountService.UpdateProfile(c, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Membership summarizes the caller's membership
// @Summary Membership status
// @Tags auth
// @Produce json
// @Success 200 {object} service.MembershipInfo
// @Security BearerAuth
// @Router /auth/membership [get]
func (h *AccountHandler) Membership(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	info, err := h.accountService.Membership(c, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// SelectPlan files a pending membership request
// @Summary Select membership plan
// @Tags auth
// @Accept json
// @Produce json
// @Param plan body service.SelectPlanRequest true "Requested months"
// @Success 201 {object} models.MembershipRequest
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 409 {object} response.ErrorResponse "A pending request already exists"
// @Security BearerAuth
// @Router /auth/select-membership-plan [post]
func (h *AccountHandler) SelectPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.SelectPlanRequest
	if !response.BindJSON(c, &req) {
		return
	}

	request, err := h.accountService.SelectPlan(c, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListUsers lists every account
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} response.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.accountService.ListUsers(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// SetActive enables or disables an account
// @Summary Toggle account
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param state body service.SetActiveRequest true "New state"
// @Success 200 {object} models.User
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/toggle-active [put]
func (h *AccountHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SetActiveRequest
	if !response.BindJSON(c, &req) {
		return
	}

	user, err := h.accountService.SetActive(c, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account
// @Summary Delete user
// @Tags admin
// @Param id path int true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.accountService.DeleteUser(c, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMembership extends an account's membership or sets its end date
// @Summary Add membership
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param membership body service.AddMembershipRequest true "Months or custom end date"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/add-membership [post]
func (h *AccountHandler) AddMembership(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.AddMembershipRequest
	if !response.BindJSON(c, &req) {
		return
	}

	user, err := h.accountService.AddMembership(c, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListMembershipRequests lists membership requests of every tenant
// @Summary List membership requests
// @Tags admin
// @Produce json
// @Success 200 {array} models.MembershipRequest
// @Security BearerAuth
// @Router /admin/membership-requests [get]
func (h *AccountHandler) ListMembershipRequests(c *gin.Context) {
	requests, err := h.accountService.ListMembershipRequests(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ApproveMembershipRequest grants the requested months and notifies the user
// @Summary Approve membership request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Membership request ID"
// @Param review body service.ReviewMembershipRequest false "Optional reason"
// @Success 200 {object} models.MembershipRequest
// @Failure 404 {object} response.ErrorResponse "Membership request not found"
// @Failure 409 {object} response.ErrorResponse "Request already reviewed"
// @Security BearerAuth
// @Router /admin/membership-requests/{id}/approve [post]
func (h *AccountHandler) ApproveMembershipRequest(c *gin.Context) {
	h.review(c, h.accountService.ApproveMembershipRequest)
}

// RejectMembershipRequest declines a request and notifies the user
// @Summary Reject membership request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Membership request ID"
// @Param review body service.ReviewMembershipRequest false "Optional reason"
// @Success 200 {object} models.MembershipRequest
// @Failure 404 {object} response.ErrorResponse "Membership request not found"
// @Security BearerAuth
// @Router /admin/membership-requests/{id}/reject [post]
func (h *AccountHandler) RejectMembershipRequest(c *gin.Context) {
	h.review(c, h.accountService.RejectMembershipRequest)
}

type membershipDecision func(ctx context.Context, id int64, req *service.ReviewMembershipRequest) (*models.MembershipRequest, error)

func (h *AccountHandler) review(c *gin.Context, decide membershipDecision) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.ReviewMembershipRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	request, err := decide(c, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
