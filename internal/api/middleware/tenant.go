package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/domain"
	tenantRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/tenant"
)

const (
	// TenantSlugHeader явно задаёт барбершоп, минуя разбор поддомена
	// (используется за reverse proxy и в тестах)
	TenantSlugHeader = "X-Tenant-Slug"

	msgTenantNotResolved = "барбершоп не определён"
	msgTenantNotFound    = "барбершоп не найден"
)

// TenantRepository резолвит slug барбершопа в tenant
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// Tenant резолвит текущий барбершоп из заголовка X-Tenant-Slug или
// поддомена Host и кладет его в контекст запроса.
// Каждый запрос несёт свой tenant в контексте: общего изменяемого
// состояния между запросами нет
func Tenant(repo TenantRepository, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := tenantSlug(r)
			if slug == "" {
				logger.Warn("Tenant: unable to resolve tenant slug, host=%s, path=%s", r.Host, r.URL.Path)
				handlers.RespondNotFound(w, msgTenantNotResolved)
				return
			}

			tenant, err := repo.GetBySlug(r.Context(), slug)
			if err != nil {
				if errors.Is(err, tenantRepo.ErrTenantNotFound) {
					logger.Warn("Tenant: tenant slug=%s not found", slug)
					handlers.RespondNotFound(w, msgTenantNotFound)
					return
				}
				logger.Error("Tenant: failed to resolve tenant slug=%s: %v", slug, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := WithTenant(r.Context(), tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tenantSlug определяет slug барбершопа: сначала заголовок,
// затем первая метка поддомена ("ze-barbearia" в ze-barbearia.example.com)
func tenantSlug(r *http.Request) string {
	if slug := strings.TrimSpace(r.Header.Get(TenantSlugHeader)); slug != "" {
		return slug
	}

	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		// "localhost" или "example.com" - поддомена нет
		return ""
	}

	return parts[0]
}
