package schedule

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих окон
type ScheduleRepository interface {
	GetByBarber(ctx context.Context, barberID string) ([]*domain.WorkingWindow, error)
	ReplaceForBarber(ctx context.Context, barberID string, windows []*domain.WorkingWindow) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
