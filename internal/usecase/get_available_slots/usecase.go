package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов для бронирования
//
// Чистое вычисление без побочных эффектов: все входные данные (рабочие окна,
// занятые бронирования) загружаются здесь и передаются в domain.GenerateSlots.
// Выдача и коммит используют одну и ту же функцию генерации, поэтому
// повторная проверка при коммите всегда согласована с показанным списком.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, barber=%s, service=%d",
		req.TenantID, req.BarberID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Получаем услугу (длительность читается свежей на каждый запрос)
	service, err := uc.catalogRepo.GetByID(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in tenant=%d", req.ServiceID, req.TenantID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%d has non-positive duration", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	// 4. Получаем рабочие окна барбера
	// Пустое расписание - это "барбера нельзя забронировать вообще",
	// а не "слотов нет": caller должен уметь различить эти случаи
	windows, err := uc.scheduleRepo.GetByBarber(ctx, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if len(windows) == 0 {
		uc.logger.Warn("GetAvailableSlots: barber=%s has no working windows", req.BarberID)
		return nil, ErrScheduleNotConfigured
	}

	// 5. Получаем будущие бронирования барбера в пределах горизонта
	// Прошедшие бронирования на доступность не влияют
	from := now
	to := horizonEnd(now, uc.horizonDays)
	bookings, err := uc.bookingRepo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID: req.BarberID,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты на горизонт
	days := domain.GenerateSlots(windows, service.DurationMinutes, bookings, uc.horizonDays, now)

	uc.logger.Info("GetAvailableSlots: generated slots for %d days, barber=%s, service=%d",
		len(days), req.BarberID, req.ServiceID)

	return &Response{
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		HorizonDays: uc.horizonDays,
		Days:        days,
	}, nil
}
