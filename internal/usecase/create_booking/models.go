package create_booking

import (
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// ClientID берётся из проверенного токена, никогда из тела запроса
type Request struct {
	TenantID  int64            // ID барбершопа (из контекста запроса)
	ClientID  string           // ID клиента (из проверенной аутентификации)
	BarberID  string           // ID барбера
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	TenantID        int64            // ID барбершопа
	ClientID        string           // ID клиента
	BarberID        string           // ID барбера
	ServiceID       int64            // ID услуги
	StartAt         time.Time        // Абсолютный момент начала (UTC)
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time // Время создания
}
