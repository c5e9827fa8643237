package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantID  int64  // ID барбершопа (из контекста запроса)
	BarberID  string // ID барбера
	ServiceID int64  // ID услуги
}

// Response модель ответа: доступные слоты по дням горизонта
type Response struct {
	BarberID    string            // ID барбера
	ServiceID   int64             // ID услуги
	HorizonDays int               // Горизонт расчёта в днях
	Days        []domain.DaySlots // Дни со слотами в хронологическом порядке
}

// horizonEnd возвращает верхнюю границу периода выборки бронирований
// (не включительно): последний день горизонта заканчивается в полночь
func horizonEnd(now time.Time, horizonDays int) time.Time {
	return domain.UTCDate(now).AddDate(0, 0, horizonDays)
}
