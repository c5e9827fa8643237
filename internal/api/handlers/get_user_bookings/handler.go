package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
)

const (
	msgMissingProfile = "требуется аутентификация"
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

// Handle GET /api/v1/users/me/bookings
// Идентичность берётся из токена: клиент видит только свои бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/bookings - Missing profile in context")
		handlers.RespondUnauthorized(w, msgMissingProfile)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), profile.ID)
	if err != nil {
		h.logger.Error("GET /users/me/bookings - Failed to get bookings: user=%s, error=%v", profile.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/bookings - Bookings retrieved successfully: user=%s, count=%d",
		profile.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
