package models

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модели

// GetBarberBookingsRequest запрос на получение бронирований барбера
// From/To фильтруют по start_at; To не включительно
type GetBarberBookingsRequest struct {
	BarberID string     `json:"barberId"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberBookingsRequest) ToDomainFilter() domain.BarberBookingsFilter {
	return domain.BarberBookingsFilter{
		BarberID: r.BarberID,
		From:     r.From,
		To:       r.To,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	TenantID        int64     `json:"tenantId"`
	BarberID        string    `json:"barberId"`
	ServiceID       int64     `json:"serviceId"`
	ClientID        string    `json:"clientId"`
	StartAt         time.Time `json:"startAt"`   // абсолютный момент, UTC
	Date            string    `json:"date"`      // "2026-03-15"
	StartTime       string    `json:"startTime"` // "10:00"
	DurationMinutes int       `json:"durationMinutes"`

	// Денормализованные данные услуги
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		TenantID:        b.TenantID,
		BarberID:        b.BarberID,
		ServiceID:       b.ServiceID,
		ClientID:        b.ClientID,
		StartAt:         b.StartAt,
		Date:            b.StartAt.UTC().Format(domain.DateFormat),
		StartTime:       types.NewTimeString(b.StartAt.UTC()).String(),
		DurationMinutes: b.DurationMinutes,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
