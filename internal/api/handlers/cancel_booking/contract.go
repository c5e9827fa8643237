package cancel_booking

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, id int64, actor *domain.Profile) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
