package middleware

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

type contextKey string

const (
	profileContextKey contextKey = "profile"
	tenantContextKey  contextKey = "tenant"
)

// WithProfile кладет профиль аутентифицированного пользователя в контекст
func WithProfile(ctx context.Context, profile *domain.Profile) context.Context {
	return context.WithValue(ctx, profileContextKey, profile)
}

// ProfileFromContext достает профиль из контекста запроса
// Второе значение false, если запрос не прошёл через Auth middleware
func ProfileFromContext(ctx context.Context) (*domain.Profile, bool) {
	profile, ok := ctx.Value(profileContextKey).(*domain.Profile)
	return profile, ok
}

// WithTenant кладет tenant в контекст
// Tenant - явное значение контекста запроса, а не глобальное состояние:
// конкурентные запросы к разным барбершопам не влияют друг на друга
func WithTenant(ctx context.Context, tenant *domain.Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenant)
}

// TenantFromContext достает tenant из контекста запроса
func TenantFromContext(ctx context.Context) (*domain.Tenant, bool) {
	tenant, ok := ctx.Value(tenantContextKey).(*domain.Tenant)
	return tenant, ok
}
