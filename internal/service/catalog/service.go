package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/BRB-BookingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг барбершопа
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает все услуги барбершопа
// Публичная операция: каталог видят неаутентифицированные клиенты
func (s *Service) List(ctx context.Context, tenantID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services for tenant=%d", tenantID)

	services, err := s.catalogRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services for tenant=%d", len(services), tenantID)
	return models.FromDomainServiceList(services), nil
}

// GetByID возвращает услугу по ID в пределах барбершопа
func (s *Service) GetByID(ctx context.Context, tenantID, serviceID int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d for tenant=%d", serviceID, tenantID)

	service, err := s.catalogRepo.GetByID(ctx, tenantID, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found in tenant=%d", serviceID, tenantID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Create создает услугу
// Доступно только администратору барбершопа
func (s *Service) Create(ctx context.Context, tenantID int64, req *models.CreateServiceRequest, actor *domain.Profile) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q for tenant=%d by user=%s", req.Name, tenantID, actor.ID)

	if err := checkAdminAccess(actor, tenantID); err != nil {
		s.logger.Warn("Create: access denied for user=%s in tenant=%d", actor.ID, tenantID)
		return nil, err
	}

	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, &domain.Service{
		TenantID:        tenantID,
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d for tenant=%d", created.ID, tenantID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу (частичное обновление)
// Изменение длительности или цены не затрагивает существующие бронирования:
// их данные денормализованы на момент создания.
// Доступно только администратору барбершопа
func (s *Service) Update(ctx context.Context, tenantID, serviceID int64, req *models.UpdateServiceRequest, actor *domain.Profile) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d for tenant=%d by user=%s", serviceID, tenantID, actor.ID)

	if err := checkAdminAccess(actor, tenantID); err != nil {
		s.logger.Warn("Update: access denied for user=%s in tenant=%d", actor.ID, tenantID)
		return nil, err
	}

	service, err := s.catalogRepo.GetByID(ctx, tenantID, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found in tenant=%d", serviceID, tenantID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return nil, err
		}
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		service.Price = *req.Price
	}

	updated, err := s.catalogRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found during update", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", serviceID)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
// Существующие бронирования не затрагиваются: их данные денормализованы.
// Доступно только администратору барбершопа
func (s *Service) Delete(ctx context.Context, tenantID, serviceID int64, actor *domain.Profile) error {
	s.logger.Info("Delete: deleting service id=%d for tenant=%d by user=%s", serviceID, tenantID, actor.ID)

	if err := checkAdminAccess(actor, tenantID); err != nil {
		s.logger.Warn("Delete: access denied for user=%s in tenant=%d", actor.ID, tenantID)
		return err
	}

	if err := s.catalogRepo.Delete(ctx, tenantID, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found in tenant=%d", serviceID, tenantID)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", serviceID)
	return nil
}

// Вспомогательные функции

// checkAdminAccess проверяет, что пользователь - администратор этого барбершопа
func checkAdminAccess(actor *domain.Profile, tenantID int64) error {
	if actor.IsAdmin() && actor.BelongsTo(tenantID) {
		return nil
	}
	return ErrAccessDenied
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name is too long (max %d)", ErrInvalidInput, domain.MaxServiceNameLength)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinServiceDurationMinutes || minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
