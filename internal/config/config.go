package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "garage-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USERNAME"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_DATABASE"`
	DatabaseSSL      bool   `mapstructure:"DB_SSL"`

	// JWT configuration
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTExpiration time.Duration `mapstructure:"JWT_EXPIRATION"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis backs the rate limiter; empty disables limiting
	RedisURL        string        `mapstructure:"REDIS_URL"`
	RateLimitGlobal int64         `mapstructure:"RATE_LIMIT_GLOBAL"`
	RateLimitAuth   int64         `mapstructure:"RATE_LIMIT_AUTH"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	WebhookTimeout     time.Duration `mapstructure:"WEBHOOK_TIMEOUT"`
	MembershipEnforced bool          `mapstructure:"MEMBERSHIP_ENFORCED"`
	MetricsEnabled     bool          `mapstructure:"METRICS_ENABLED"`

	// Recipient of contact form notifications
	AdminTenantID int64  `mapstructure:"ADMIN_TENANT_ID"`
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
}

// requiredKeys must be present in the environment or config file; there are no defaults for them.
var requiredKeys = []string{"DB_HOST", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE", "JWT_SECRET"}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables. Keys without defaults are bound
	// explicitly so Unmarshal can see them.
	viper.AutomaticEnv()
	for _, key := range append(requiredKeys, "DATABASE_URL", "REDIS_URL") {
		_ = viper.BindEnv(key)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, err
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSL", false)

	// JWT defaults
	viper.SetDefault("JWT_EXPIRATION", 60*time.Minute)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Rate limiting defaults
	viper.SetDefault("RATE_LIMIT_GLOBAL", 100)
	viper.SetDefault("RATE_LIMIT_AUTH", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	viper.SetDefault("WEBHOOK_TIMEOUT", 10*time.Second)
	viper.SetDefault("MEMBERSHIP_ENFORCED", false)
	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("ADMIN_TENANT_ID", 0)
	viper.SetDefault("ADMIN_USERNAME", "admin")
}

func buildDatabaseURL(config *Config) string {
	sslMode := "disable"
	if config.DatabaseSSL {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		sslMode,
	)
}

func validate(config *Config) error {
	var missing []string
	values := map[string]string{
		"DB_HOST":     config.DatabaseHost,
		"DB_USERNAME": config.DatabaseUser,
		"DB_PASSWORD": config.DatabasePassword,
		"DB_DATABASE": config.DatabaseName,
		"JWT_SECRET":  config.JWTSecret,
	}
	for _, key := range requiredKeys {
		// A full DATABASE_URL stands in for the individual DB_* parts
		if config.DatabaseURL != "" && strings.HasPrefix(key, "DB_") {
			continue
		}
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewMissingConfigError(missing)
	}

	if config.JWTExpiration <= 0 {
		return apperrors.NewConfigurationError("JWT_EXPIRATION must be positive")
	}
	if config.RateLimitWindow <= 0 {
		return apperrors.NewConfigurationError("RATE_LIMIT_WINDOW must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RateLimitEnabled reports whether a Redis backend is configured
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURL != ""
}
