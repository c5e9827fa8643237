package get_barber_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/bookings"
	"github.com/m04kA/BRB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgMissingProfile  = "требуется аутентификация"
	msgForbidden       = "доступ запрещен"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod   = "некорректный период"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/bookings
// Query params: date (YYYY-MM-DD, дневной календарь) либо from/to (период)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberID := vars["barberId"]
	if barberID == "" {
		h.logger.Warn("GET /barbers/{id}/bookings - Empty barber ID")
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /barbers/{id}/bookings - Missing profile in context")
		handlers.RespondUnauthorized(w, msgMissingProfile)
		return
	}

	req := &models.GetBarberBookingsRequest{BarberID: barberID}

	query := r.URL.Query()
	if dateStr := query.Get("date"); dateStr != "" {
		// Дневной календарь: весь день [date, date+1)
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /barbers/{id}/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from := domain.UTCDate(date)
		to := from.AddDate(0, 0, 1)
		req.From = &from
		req.To = &to
	} else {
		if fromStr := query.Get("from"); fromStr != "" {
			from, err := time.Parse(domain.DateFormat, fromStr)
			if err != nil {
				h.logger.Warn("GET /barbers/{id}/bookings - Invalid 'from' date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			from = domain.UTCDate(from)
			req.From = &from
		}
		if toStr := query.Get("to"); toStr != "" {
			to, err := time.Parse(domain.DateFormat, toStr)
			if err != nil {
				h.logger.Warn("GET /barbers/{id}/bookings - Invalid 'to' date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			// Верхняя граница не включительно: день "to" попадает в выборку целиком
			to = domain.UTCDate(to).AddDate(0, 0, 1)
			req.To = &to
		}
	}

	result, err := h.service.GetBarberBookings(r.Context(), req, profile)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /barbers/{id}/bookings - Access denied: barber=%s, user=%s", barberID, profile.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /barbers/{id}/bookings - Failed to get bookings: barber=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/bookings - Bookings retrieved successfully: barber=%s, count=%d",
		barberID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
