package update_schedule

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceWeek(ctx context.Context, req *models.ReplaceWeekRequest, actor *domain.Profile) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
