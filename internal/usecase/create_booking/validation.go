package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.BarberID == "" {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDateWithinHorizon проверяет, что дата попадает в рассчитываемый горизонт
// Слоты существуют только внутри [сегодня, сегодня + horizonDays):
// дата вне горизонта не могла быть показана клиенту
func validateDateWithinHorizon(date time.Time, now time.Time, horizonDays int) error {
	day := domain.UTCDate(date)
	today := domain.UTCDate(now)

	if day.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrDateOutsideHorizon)
	}

	if !day.Before(today.AddDate(0, 0, horizonDays)) {
		return fmt.Errorf("%w: can only book %d days ahead", ErrDateOutsideHorizon, horizonDays)
	}

	return nil
}

// containsSlot проверяет членство выбранного времени в списке слотов
func containsSlot(times []types.TimeString, selected types.TimeString) bool {
	for _, t := range times {
		if t == selected {
			return true
		}
	}
	return false
}
