package domain

import "time"

// Booking подтверждённая запись клиента к барберу
// start_at хранится как абсолютный момент в UTC; длительность, название и цена
// услуги денормализованы на момент создания, чтобы правки каталога
// не влияли на историю.
// Инвариант: для одного барбера интервалы [StartAt, StartAt+Duration)
// не пересекаются; финальный арбитр - уникальный индекс (barber_id, start_at)
// в связке с пересчётом слотов в сериализуемой транзакции.
type Booking struct {
	ID              int64
	TenantID        int64
	BarberID        string
	ServiceID       int64
	ClientID        string
	StartAt         time.Time // UTC
	DurationMinutes int

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}

// EndAt возвращает момент окончания бронирования
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsOwnedBy returns true if the booking was created by the given client
func (b *Booking) IsOwnedBy(clientID string) bool {
	return b.ClientID == clientID
}

// BarberBookingsFilter фильтр для выборки бронирований барбера
type BarberBookingsFilter struct {
	BarberID string     // Обязательный параметр
	From     *time.Time // Начало периода по start_at (опционально)
	To       *time.Time // Конец периода по start_at, не включительно (опционально)
}
