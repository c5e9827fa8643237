package domain

import "time"

// Service услуга барбершопа (стрижка, бритьё и т.д.)
// Длительность услуги задаёт шаг сетки слотов для этой услуги:
// разные длительности дают разные, несовместимые сетки.
// При создании бронирования длительность и цена денормализуются в запись
// бронирования, поэтому последующее изменение услуги не сдвигает
// уже созданные бронирования.
type Service struct {
	ID              int64
	TenantID        int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if the service has a usable slot grid
func (s *Service) IsBookable() bool {
	return s.DurationMinutes > 0
}
