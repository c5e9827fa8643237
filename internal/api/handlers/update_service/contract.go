package update_service

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, tenantID, serviceID int64, req *models.UpdateServiceRequest, actor *domain.Profile) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
