package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	"github.com/m04kA/BRB-BookingService/internal/service/catalog"
)

const (
	msgMissingTenant    = "барбершоп не определён"
	msgMissingProfile   = "требуется аутентификация"
	msgForbidden        = "управлять каталогом может только администратор"
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
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

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /services/{id} - Missing tenant in context")
		handlers.RespondNotFound(w, msgMissingTenant)
		return
	}

	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /services/{id} - Missing profile in context")
		handlers.RespondUnauthorized(w, msgMissingProfile)
		return
	}

	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), tenant.ID, serviceID, profile); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: tenant=%d, service_id=%d", tenant.ID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("DELETE /services/{id} - Access denied: tenant=%d, user=%s", tenant.ID, profile.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted successfully: tenant=%d, service_id=%d",
		tenant.ID, serviceID)
	handlers.RespondNoContent(w)
}
