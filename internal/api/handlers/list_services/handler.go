package list_services

import (
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
)

const (
	msgMissingTenant = "барбершоп не определён"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /services - Missing tenant in context")
		handlers.RespondNotFound(w, msgMissingTenant)
		return
	}

	result, err := h.service.List(r.Context(), tenant.ID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: tenant=%d, error=%v", tenant.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: tenant=%d, count=%d",
		tenant.ID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
