package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	"github.com/m04kA/BRB-BookingService/internal/service/catalog"
	"github.com/m04kA/BRB-BookingService/internal/service/catalog/models"
)

const (
	msgMissingTenant      = "барбершоп не определён"
	msgMissingProfile     = "требуется аутентификация"
	msgForbidden          = "управлять каталогом может только администратор"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing tenant in context")
		handlers.RespondNotFound(w, msgMissingTenant)
		return
	}

	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing profile in context")
		handlers.RespondUnauthorized(w, msgMissingProfile)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), tenant.ID, &req, profile)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /services - Access denied: tenant=%d, user=%s", tenant.ID, profile.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /services - Failed to create service: tenant=%d, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: tenant=%d, service_id=%d",
		tenant.ID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
