package models

import (
	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модели

// WindowPayload одно рабочее окно в запросе на сохранение недели
type WindowPayload struct {
	Weekday   int    `json:"weekday"`   // ISO 1..7 (понедельник = 1)
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ReplaceWeekRequest запрос на полную замену недельного расписания барбера
// Сохранение недели атомарно: присланный набор целиком замещает прежний
type ReplaceWeekRequest struct {
	BarberID string          `json:"barberId"`
	Windows  []WindowPayload `json:"windows"`
}

// ToDomainWindows конвертирует payload в domain модели
func (r *ReplaceWeekRequest) ToDomainWindows() []*domain.WorkingWindow {
	windows := make([]*domain.WorkingWindow, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, &domain.WorkingWindow{
			BarberID:  r.BarberID,
			Weekday:   w.Weekday,
			StartTime: types.TimeString(w.StartTime),
			EndTime:   types.TimeString(w.EndTime),
		})
	}
	return windows
}

// Response модели

// WindowResponse одно рабочее окно в ответе
type WindowResponse struct {
	ID        int64  `json:"id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResponse недельное расписание барбера
type ScheduleResponse struct {
	BarberID string           `json:"barberId"`
	Windows  []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindows конвертирует domain модели в DTO
func FromDomainWindows(barberID string, windows []*domain.WorkingWindow) *ScheduleResponse {
	resp := &ScheduleResponse{
		BarberID: barberID,
		Windows:  make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		resp.Windows = append(resp.Windows, WindowResponse{
			ID:        w.ID,
			Weekday:   w.Weekday,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}

	return resp
}
