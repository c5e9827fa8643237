package get_available_slots

import (
	"github.com/m04kA/BRB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BRB-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// Days содержит только даты, на которые есть хотя бы один свободный слот
type AvailableSlotsResponse struct {
	BarberID    string     `json:"barberId"`
	ServiceID   int64      `json:"serviceId"`
	HorizonDays int        `json:"horizonDays"`
	Days        []DaySlots `json:"days"`
}

// DaySlots слоты одной даты в хронологическом порядке
type DaySlots struct {
	Date  string   `json:"date"`  // "2026-03-15"
	Times []string `json:"times"` // ["09:00", "09:30", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DaySlots, len(resp.Days))
	for i, day := range resp.Days {
		times := make([]string, len(day.Times))
		for j, t := range day.Times {
			times[j] = t.String()
		}
		days[i] = DaySlots{
			Date:  day.Date.Format(domain.DateFormat),
			Times: times,
		}
	}

	return &AvailableSlotsResponse{
		BarberID:    resp.BarberID,
		ServiceID:   resp.ServiceID,
		HorizonDays: resp.HorizonDays,
		Days:        days,
	}
}
