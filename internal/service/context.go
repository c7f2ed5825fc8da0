package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Request scoped values set by the HTTP middleware. They feed logging and
// auditing only; tenant scope is always an explicit argument.
const (
	ContextKeyUsername  = "username"
	ContextKeyClientIP  = "client_ip"
	ContextKeyUserAgent = "user_agent"
)

func actor(ctx context.Context) string {
	return contextString(ctx, ContextKeyUsername)
}

func contextString(ctx context.Context, key string) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// repoError maps a missing row onto the entity's NotFound sentinel and wraps anything else
func repoError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
