package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/BRB-BookingService/internal/usecase/create_booking"
)

const (
	msgMissingTenant         = "барбершоп не определён"
	msgMissingProfile        = "требуется аутентификация"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest        = "некорректные параметры запроса"
	msgSlotNotAvailable      = "выбранный слот уже занят, обновите список слотов"
	msgServiceNotFound       = "услуга не найдена"
	msgScheduleNotConfigured = "у барбера не настроено рабочее расписание"
	msgServiceNotBookable    = "услуга недоступна для записи"
	msgDateOutsideHorizon    = "запись возможна только на ближайшие дни"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing tenant in context")
		handlers.RespondNotFound(w, msgMissingTenant)
		return
	}

	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing profile in context")
		handlers.RespondUnauthorized(w, msgMissingProfile)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenant.ID, profile.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			// Проигрыш гонки и устаревший слот выглядят для клиента одинаково
			h.logger.Warn("POST /bookings - Slot not available: client=%s, barber=%s, date=%s, time=%s",
				profile.ID, req.BarberID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: tenant=%d, service_id=%d", tenant.ID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrScheduleNotConfigured):
			h.logger.Warn("POST /bookings - Schedule not configured: barber=%s", req.BarberID)
			handlers.RespondUnprocessableEntity(w, msgScheduleNotConfigured)

		case errors.Is(err, createBooking.ErrServiceNotBookable):
			h.logger.Warn("POST /bookings - Service not bookable: service_id=%d", req.ServiceID)
			handlers.RespondUnprocessableEntity(w, msgServiceNotBookable)

		case errors.Is(err, createBooking.ErrDateOutsideHorizon):
			h.logger.Warn("POST /bookings - Date outside horizon: client=%s, date=%s", profile.ID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutsideHorizon)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client=%s, barber=%s, error=%v",
				profile.ID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client=%s, barber=%s",
		result.ID, profile.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
