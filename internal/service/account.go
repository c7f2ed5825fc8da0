package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// AccountService covers the profile, membership and admin account operations.
// Registration, login and passwords live in the auth package.
type AccountService struct {
	users     repository.UserRepositoryInterface
	requests  repository.MembershipRequestRepositoryInterface
	notifier  Notifier
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(users repository.UserRepositoryInterface, requests repository.MembershipRequestRepositoryInterface, notifier Notifier, validator *validator.Validate) *AccountService {
	return &AccountService{
		users:     users,
		requests:  requests,
		notifier:  notifier,
		validator: validator,
	}
}

// UpdateProfileRequest is a partial update of the company profile
type UpdateProfileRequest struct {
	FirmaAdi    *string `json:"firmaAdi,omitempty" validate:"omitempty,max=200"`
	YetkiliKisi *string `json:"yetkiliKisi,omitempty" validate:"omitempty,max=200"`
	Telefon     *string `json:"telefon,omitempty" validate:"omitempty,max=50"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Adres       *string `json:"adres,omitempty"`
	VergiNo     *string `json:"vergiNo,omitempty" validate:"omitempty,max=50"`
}

// MembershipInfo summarizes the caller's membership
type MembershipInfo struct {
	IsActive          bool       `json:"isActive"`
	MembershipEndDate *time.Time `json:"membershipEndDate"`
	DaysRemaining     int        `json:"daysRemaining"`
	HasPendingRequest bool       `json:"hasPendingRequest"`
}

// SelectPlanRequest asks for a membership period
type SelectPlanRequest struct {
	Months *int `json:"months" validate:"required,min=1,max=120"`
}

// SetActiveRequest toggles an account
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// AddMembershipRequest extends or sets a membership. CustomDate wins over Months.
type AddMembershipRequest struct {
	Months     *int    `json:"months" validate:"required_without=CustomDate,omitempty,min=1,max=120"`
	CustomDate *string `json:"customDate,omitempty"`
}

// ReviewMembershipRequest carries an optional admin reason
type ReviewMembershipRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// GetProfile returns the account of the caller
func (s *AccountService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, repoError(err, apperrors.ErrUserNotFound, "get user")
	}
	return user, nil
}

// UpdateProfile applies the present profile fields
func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*models.User, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	fields := map[string]*string{
		"firma_adi":    req.FirmaAdi,
		"yetkili_kisi": req.YetkiliKisi,
		"telefon":      req.Telefon,
		"email":        req.Email,
		"adres":        req.Adres,
		"vergi_no":     req.VergiNo,
	}
	for col, v := range fields {
		if v != nil {
			updates[col] = *v
		}
	}

	if len(updates) > 0 {
		if err := s.users.Update(userID, updates); err != nil {
			return nil, repoError(err, apperrors.ErrUserNotFound, "update profile")
		}
	}
	return s.GetProfile(ctx, userID)
}

// Membership reports the caller's membership state
func (s *AccountService) Membership(ctx context.Context, userID int64) (*MembershipInfo, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	pending, err := s.requests.HasPending(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership requests: %w", err)
	}

	now := time.Now()
	info := &MembershipInfo{
		IsActive:          user.MembershipActive(now),
		MembershipEndDate: user.MembershipEndDate,
		HasPendingRequest: pending,
	}
	if user.MembershipEndDate != nil && user.MembershipEndDate.After(now) {
		info.DaysRemaining = int(math.Ceil(user.MembershipEndDate.Sub(now).Hours() / 24))
	}
	return info, nil
}

// MembershipActive reports whether the account may access tenant data. It backs the membership guard.
func (s *AccountService) MembershipActive(ctx context.Context, userID int64) (bool, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.MembershipActive(time.Now()), nil
}

// SelectPlan files a pending membership request. Only one may be pending per account.
func (s *AccountService) SelectPlan(ctx context.Context, userID int64, req *SelectPlanRequest) (*models.MembershipRequest, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.requests.HasPending(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership requests: %w", err)
	}
	if pending {
		return nil, apperrors.ErrPendingMembershipRequestExists
	}

	request := &models.MembershipRequest{
		TenantModel: models.TenantModel{TenantID: user.TenantID},
		UserID:      user.ID,
		Username:    user.Username,
		Months:      *req.Months,
		Status:      models.MembershipRequestPending,
	}
	if err := s.requests.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create membership request: %w", err)
	}
	return request, nil
}

// ListUsers returns every account
func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// SetActive enables or disables an account
func (s *AccountService) SetActive(ctx context.Context, id int64, req *SetActiveRequest) (*models.User, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.users.Update(id, map[string]interface{}{"is_active": *req.IsActive}); err != nil {
		return nil, repoError(err, apperrors.ErrUserNotFound, "update user")
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":   id,
		"is_active": *req.IsActive,
	}).Info("Account activation changed")
	return s.GetProfile(ctx, id)
}

// DeleteUser removes an account and its membership requests
func (s *AccountService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(id); err != nil {
		return repoError(err, apperrors.ErrUserNotFound, "delete user")
	}
	return nil
}

// AddMembership extends the account by Months from max(now, current end), or
// sets the end date to CustomDate when given
func (s *AccountService) AddMembership(ctx context.Context, id int64, req *AddMembershipRequest) (*models.User, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if req.CustomDate != nil && *req.CustomDate != "" {
		end, err = parseDate(*req.CustomDate)
		if err != nil {
			return nil, apperrors.ErrMembershipCustomDateInvalid
		}
	} else if req.Months != nil {
		end = extendMembership(user.MembershipEndDate, *req.Months, time.Now())
	} else {
		return nil, apperrors.NewValidationError("months", "is required")
	}

	updates := map[string]interface{}{
		"membership_end_date": end,
		"is_active":           true,
	}
	if err := s.users.Update(id, updates); err != nil {
		return nil, repoError(err, apperrors.ErrUserNotFound, "update membership")
	}
	return s.GetProfile(ctx, id)
}

// ListMembershipRequests returns every request, newest first
func (s *AccountService) ListMembershipRequests(ctx context.Context) ([]models.MembershipRequest, error) {
	requests, err := s.requests.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list membership requests: %w", err)
	}
	if requests == nil {
		requests = []models.MembershipRequest{}
	}
	return requests, nil
}

// ApproveMembershipRequest extends the requester's membership by the requested months
func (s *AccountService) ApproveMembershipRequest(ctx context.Context, id int64, req *ReviewMembershipRequest) (*models.MembershipRequest, error) {
	request, err := s.pendingRequest(id)
	if err != nil {
		return nil, err
	}
	user, err := s.GetProfile(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	reason := reviewReason(req, "Üyelik talebiniz onaylandı.")
	end := extendMembership(user.MembershipEndDate, request.Months, time.Now())
	if err := s.requests.Approve(id, reason, end); err != nil {
		return nil, repoError(err, apperrors.ErrMembershipRequestNotFound, "approve membership request")
	}

	s.notify(ctx, request, NewNotification{
		Username: request.Username,
		Title:    "Üyeliğiniz Onaylandı! 🎉",
		Message:  fmt.Sprintf("%d aylık üyelik talebiniz onaylandı. Bitiş tarihi: %s.", request.Months, end.Format("02.01.2006")),
		Content:  reason,
		Type:     models.NotificationTypeMembershipApproved,
	})
	return s.reload(id)
}

// RejectMembershipRequest declines a pending request
func (s *AccountService) RejectMembershipRequest(ctx context.Context, id int64, req *ReviewMembershipRequest) (*models.MembershipRequest, error) {
	request, err := s.pendingRequest(id)
	if err != nil {
		return nil, err
	}

	reason := reviewReason(req, "Üyelik talebiniz şu an için onaylanamadı.")
	if err := s.requests.Reject(id, reason); err != nil {
		return nil, repoError(err, apperrors.ErrMembershipRequestNotFound, "reject membership request")
	}

	s.notify(ctx, request, NewNotification{
		Username: request.Username,
		Title:    "Üyelik Talebiniz Değerlendirildi",
		Message:  fmt.Sprintf("%d aylık üyelik talebiniz reddedildi.", request.Months),
		Content:  reason,
		Type:     models.NotificationTypeMembershipRejected,
	})
	return s.reload(id)
}

func (s *AccountService) pendingRequest(id int64) (*models.MembershipRequest, error) {
	request, err := s.requests.GetByID(id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrMembershipRequestNotFound, "get membership request")
	}
	if request.Status != models.MembershipRequestPending {
		return nil, apperrors.ErrMembershipRequestNotPending
	}
	return request, nil
}

func (s *AccountService) reload(id int64) (*models.MembershipRequest, error) {
	request, err := s.requests.GetByID(id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrMembershipRequestNotFound, "get membership request")
	}
	return request, nil
}

func (s *AccountService) notify(ctx context.Context, request *models.MembershipRequest, n NewNotification) {
	if _, err := s.notifier.Notify(ctx, request.TenantID, n); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("membership_request_id", request.ID).Warn("Failed to notify membership requester")
	}
}

func reviewReason(req *ReviewMembershipRequest, fallback string) string {
	if req != nil && req.Reason != nil && *req.Reason != "" {
		return *req.Reason
	}
	return fallback
}

// extendMembership adds months to the later of now and the current end date
func extendMembership(current *time.Time, months int, now time.Time) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.AddDate(0, months, 0)
}

// parseDate accepts YYYY-MM-DD or RFC3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
