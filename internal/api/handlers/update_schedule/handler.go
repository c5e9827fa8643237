package update_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	"github.com/m04kA/BRB-BookingService/internal/service/schedule"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgMissingProfile     = "требуется аутентификация"
	msgForbidden          = "менять расписание может только сам барбер или администратор"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректное рабочее окно"
	msgOverlappingWindows = "рабочие окна одного дня пересекаются"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberID := vars["barberId"]
	if barberID == "" {
		h.logger.Warn("PUT /barbers/{id}/schedule - Empty barber ID")
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /barbers/{id}/schedule - Missing profile in context")
		handlers.RespondUnauthorized(w, msgMissingProfile)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceWeek(r.Context(), req.ToServiceRequest(barberID), profile)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /barbers/{id}/schedule - Access denied: barber=%s, user=%s", barberID, profile.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidWindow):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, schedule.ErrOverlappingWindows):
			h.logger.Warn("PUT /barbers/{id}/schedule - Overlapping windows: %v", err)
			handlers.RespondBadRequest(w, msgOverlappingWindows)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /barbers/{id}/schedule - Failed to replace schedule: barber=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/{id}/schedule - Schedule replaced successfully: barber=%s, windows=%d",
		barberID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
