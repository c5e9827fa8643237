package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/BRB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingTenant         = "барбершоп не определён"
	msgInvalidBarberID       = "некорректный ID барбера"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgServiceNotFound       = "услуга не найдена"
	msgScheduleNotConfigured = "у барбера не настроено рабочее расписание"
	msgServiceNotBookable    = "услуга недоступна для записи"
	msgInvalidRequest        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/services/{serviceId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Missing tenant in context")
		handlers.RespondNotFound(w, msgMissingTenant)
		return
	}

	vars := mux.Vars(r)

	barberID := vars["barberId"]
	if barberID == "" {
		h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Empty barber ID")
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	serviceIDStr := vars["serviceId"]
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TenantID:  tenant.ID,
		BarberID:  barberID,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Service not found: tenant=%d, service_id=%d",
				tenant.ID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrScheduleNotConfigured):
			// Отсутствие расписания - это отсутствие конфигурации,
			// а не пустой список слотов
			h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Schedule not configured: barber=%s", barberID)
			handlers.RespondUnprocessableEntity(w, msgScheduleNotConfigured)

		case errors.Is(err, getAvailableSlots.ErrServiceNotBookable):
			h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Service not bookable: service_id=%d", serviceID)
			handlers.RespondUnprocessableEntity(w, msgServiceNotBookable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/services/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /barbers/{id}/services/{id}/available-slots - Failed to get slots: barber=%s, service_id=%d, error=%v",
				barberID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /barbers/{id}/services/{id}/available-slots - Slots retrieved successfully: barber=%s, service_id=%d, days=%d",
		barberID, serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
