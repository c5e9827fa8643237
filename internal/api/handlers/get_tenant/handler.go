package get_tenant

import (
	"net/http"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
)

const (
	msgMissingTenant = "барбершоп не определён"
)

// TenantResponse HTTP response model
type TenantResponse struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/tenant
// Tenant уже разрезолвлен middleware по поддомену/заголовку,
// хендлеру остаётся отдать его из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /tenant - Missing tenant in context")
		handlers.RespondNotFound(w, msgMissingTenant)
		return
	}

	h.logger.Info("GET /tenant - Tenant resolved: id=%d, slug=%s", tenant.ID, tenant.Slug)
	handlers.RespondJSON(w, http.StatusOK, &TenantResponse{
		ID:        tenant.ID,
		Slug:      tenant.Slug,
		Name:      tenant.Name,
		CreatedAt: tenant.CreatedAt.Format(time.RFC3339),
	})
}
