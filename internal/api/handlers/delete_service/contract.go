package delete_service

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

type CatalogService interface {
	Delete(ctx context.Context, tenantID, serviceID int64, actor *domain.Profile) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
