package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"
	"garage-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tenantIDMin           = 10000000
	tenantIDMax           = 99999999
	tenantAllocationTries = 10
	tokenIssuer           = "garage-backend"
)

// AuthService provides authentication functionality
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	auditor   service.Auditor
	validator *validator.Validate

	// newTenantID draws a candidate tenant id; replaced in tests
	newTenantID func() int64
}

// AuthClaims represents JWT token claims. Subject carries the user id.
type AuthClaims struct {
	Username             string          `json:"username" example:"usta"`
	TenantID             int64           `json:"tenant_id" example:"12345678"`
	Role                 models.UserRole `json:"role" example:"user"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID returns the account id stored in the subject claim
func (c *AuthClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// CredentialsRequest is the body of the register and login endpoints
type CredentialsRequest struct {
	Username *string `json:"username" validate:"required,min=1,max=100" example:"usta"`
	Password *string `json:"password" validate:"required,min=1,max=72" example:"gizli123"`
}

// LoginResponse mirrors the login contract: result false carries no token
type LoginResponse struct {
	Result bool   `json:"result" example:"true"`
	Token  string `json:"token,omitempty"`
}

// RefreshResponse carries a reissued token
type RefreshResponse struct {
	NewToken string `json:"newToken"`
}

// RegisterResponse describes the account created by a registration
type RegisterResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	TenantID int64           `json:"tenant_id"`
	Role     models.UserRole `json:"role"`
}

// ChangePasswordRequest is the body of the change-password endpoint
type ChangePasswordRequest struct {
	OldPassword *string `json:"oldPassword" validate:"required"`
	NewPassword *string `json:"newPassword" validate:"required,min=6,max=72"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Çıkış yapıldı"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, auditor service.Auditor, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:      config,
		users:       users,
		auditor:     auditor,
		validator:   validator,
		newTenantID: randomTenantID,
	}, nil
}

func randomTenantID() int64 {
	return tenantIDMin + rand.Int64N(tenantIDMax-tenantIDMin+1)
}

// Register creates an account with a freshly allocated tenant
func (s *AuthService) Register(ctx context.Context, req *CredentialsRequest) (*RegisterResponse, error) {
	if err := service.ValidateRequest(s.validator, req); err != nil {
		return nil, err
	}

	exists, err := s.users.UsernameExists(*req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserExists
	}

	tenantID, err := s.allocateTenantID()
	if err != nil {
		return nil, err
	}

	hash, err := s.HashPassword(*req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		TenantID:     tenantID,
		Username:     *req.Username,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"username":  user.Username,
		"tenant_id": user.TenantID,
	}).Info("Registered new account")

	return &RegisterResponse{ID: user.ID, Username: user.Username, TenantID: user.TenantID, Role: user.Role}, nil
}

func (s *AuthService) allocateTenantID() (int64, error) {
	for attempt := 0; attempt < tenantAllocationTries; attempt++ {
		candidate := s.newTenantID()
		taken, err := s.users.TenantIDExists(candidate)
		if err != nil {
			return 0, fmt.Errorf("failed to check tenant id: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return 0, apperrors.ErrTenantAllocationFailed
}

// Login checks the credentials and issues a token. Unknown users and wrong
// passwords both yield result false; an inactive account is an authorization error.
func (s *AuthService) Login(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error) {
	user, err := s.authenticate(req)
	if err != nil || user == nil {
		return &LoginResponse{Result: false}, err
	}

	return s.issue(ctx, user)
}

// AdminLogin behaves like Login but only admits admin accounts
func (s *AuthService) AdminLogin(ctx context.Context, req *CredentialsRequest) (*LoginResponse, error) {
	user, err := s.authenticate(req)
	if err != nil || user == nil {
		return &LoginResponse{Result: false}, err
	}
	if !user.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	return s.issue(ctx, user)
}

func (s *AuthService) authenticate(req *CredentialsRequest) (*models.User, error) {
	if req == nil || req.Username == nil || req.Password == nil || *req.Username == "" || *req.Password == "" {
		return nil, nil
	}

	user, err := s.users.GetByUsername(*req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*req.Password)) != nil {
		return nil, nil
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}
	return user, nil
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*LoginResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.auditor.Record(context.WithValue(ctx, service.ContextKeyUsername, user.Username), user.TenantID, models.ActionLogin, "")
	return &LoginResponse{Result: true, Token: token}, nil
}

// Refresh reissues a token from one whose signature is valid, ignoring its expiry.
// Claims are rebuilt from the stored account, so a deleted account cannot refresh
// and a deactivated one is refused.
func (s *AuthService) Refresh(tokenString string) (*RefreshResponse, error) {
	claims, err := s.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	token, err := s.sign(user.ID, user.Username, user.TenantID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &RefreshResponse{NewToken: token}, nil
}

// ChangePassword replaces the caller's password once the current one is confirmed
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) (*MessageResponse, error) {
	if err := service.ValidateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*req.OldPassword)) != nil {
		return nil, apperrors.ErrCurrentPasswordMismatch
	}

	hash, err := s.HashPassword(*req.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.Update(userID, map[string]interface{}{"password_hash": hash}); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return &MessageResponse{Message: "Şifre başarıyla değiştirildi"}, nil
}

// Logout records the audit entry. Tokens are stateless, so nothing is revoked.
func (s *AuthService) Logout(ctx context.Context, tenantID int64) *MessageResponse {
	s.auditor.Record(ctx, tenantID, models.ActionLogout, "")
	return &MessageResponse{Message: "Çıkış yapıldı"}
}

// HashPassword returns the bcrypt hash of password
func (s *AuthService) HashPassword(password string) (string, error) {
	cost := s.config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	return s.sign(user.ID, user.Username, user.TenantID, user.Role)
}

func (s *AuthService) sign(userID int64, username string, tenantID int64, role models.UserRole) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	return s.parse(tokenString)
}

func (s *AuthService) parse(tokenString string, opts ...jwt.ParserOption) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}
