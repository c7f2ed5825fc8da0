package service

import (
	"context"
	"fmt"

	"garage-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
)

// ContactService forwards public contact form messages to the admin account
type ContactService struct {
	notifier      Notifier
	validator     *validator.Validate
	adminTenantID int64
	adminUsername string
}

// NewContactService creates a new contact service addressed to the given admin
func NewContactService(notifier Notifier, validator *validator.Validate, adminTenantID int64, adminUsername string) *ContactService {
	return &ContactService{
		notifier:      notifier,
		validator:     validator,
		adminTenantID: adminTenantID,
		adminUsername: adminUsername,
	}
}

// ContactRequest is the public contact form
type ContactRequest struct {
	Name    *string `json:"name" validate:"required,min=1,max=200"`
	Email   *string `json:"email" validate:"required,email"`
	Subject *string `json:"subject" validate:"required,min=1,max=255"`
	Message *string `json:"message" validate:"required,min=1"`
}

// ContactResponse acknowledges a submitted message
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send stores the message as a contact_message notification for the admin
func (s *ContactService) Send(ctx context.Context, req *ContactRequest) (*ContactResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.notifier.Notify(ctx, s.adminTenantID, NewNotification{
		Username: s.adminUsername,
		Title:    "Yeni İletişim Mesajı: " + *req.Subject,
		Message:  fmt.Sprintf("%s (%s) size bir mesaj gönderdi.", *req.Name, *req.Email),
		Content:  fmt.Sprintf("Konu: %s\n\nMesaj:\n%s", *req.Subject, *req.Message),
		Type:     models.NotificationTypeContactMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deliver contact message: %w", err)
	}

	return &ContactResponse{
		Success: true,
		Message: "Mesajınız başarıyla gönderildi. En kısa sürede size dönüş yapacağız.",
	}, nil
}
