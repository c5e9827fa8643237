package update_schedule

import (
	"github.com/m04kA/BRB-BookingService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
// Полная замена недели: присланный набор окон замещает прежний целиком
type UpdateScheduleRequest struct {
	Windows []models.WindowPayload `json:"windows"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(barberID string) *models.ReplaceWeekRequest {
	return &models.ReplaceWeekRequest{
		BarberID: barberID,
		Windows:  r.Windows,
	}
}
