package auth

import (
	"time"

	"garage-backend/internal/config"
	apperrors "garage-backend/internal/errors"
)

// DefaultTokenExpiration applies when no expiration is configured
const DefaultTokenExpiration = 60 * time.Minute

// AuthConfig holds the token settings used by the auth service
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret" json:"jwt_secret"`
	JWTExpiration time.Duration `yaml:"jwt_expiration" json:"jwt_expiration"`
	// BcryptCost falls back to bcrypt.DefaultCost when zero
	BcryptCost int `yaml:"bcrypt_cost" json:"bcrypt_cost"`
}

// NewAuthConfig derives the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		JWTExpiration: cfg.JWTExpiration,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.NewMissingConfigError([]string{"JWT_SECRET"})
	}
	if c.JWTExpiration < 0 {
		return apperrors.NewConfigurationError("JWT_EXPIRATION must be positive")
	}
	if c.JWTExpiration == 0 {
		c.JWTExpiration = DefaultTokenExpiration
	}
	return nil
}
