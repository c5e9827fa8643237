package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/schedule/models"
)

// Service сервис для работы с недельным расписанием барберов
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeek возвращает недельное расписание барбера
// Пустой список окон - валидный результат: барбер ещё не настроил расписание
func (s *Service) GetWeek(ctx context.Context, barberID string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for barber=%s", barberID)

	if barberID == "" {
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	windows, err := s.scheduleRepo.GetByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: successfully fetched %d windows for barber=%s", len(windows), barberID)
	return models.FromDomainWindows(barberID, windows), nil
}

// ReplaceWeek полностью замещает недельное расписание барбера
// Присланный набор окон - единственный источник истины: старые окна
// удаляются и новые вставляются в одной транзакции (replace-on-save).
// Менять расписание может сам барбер или администратор барбершопа
func (s *Service) ReplaceWeek(ctx context.Context, req *models.ReplaceWeekRequest, actor *domain.Profile) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceWeek: replacing schedule for barber=%s by user=%s, %d windows",
		req.BarberID, actor.ID, len(req.Windows))

	if req.BarberID == "" {
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if actor.ID != req.BarberID && !actor.IsAdmin() {
		s.logger.Warn("ReplaceWeek: access denied for user=%s to barber=%s schedule", actor.ID, req.BarberID)
		return nil, ErrAccessDenied
	}

	windows := req.ToDomainWindows()
	if err := validateWindows(windows); err != nil {
		s.logger.Warn("ReplaceWeek: validation failed for barber=%s: %v", req.BarberID, err)
		return nil, err
	}

	// DELETE + INSERT должны быть атомарны, иначе конкурентный расчёт
	// слотов увидит барбера без расписания
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceForBarber(txCtx, req.BarberID, windows)
	})
	if err != nil {
		s.logger.Error("ReplaceWeek: failed to replace schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: ReplaceWeek - repository error: %v", ErrInternal, err)
	}

	// Перечитываем сохранённое расписание, чтобы вернуть окна с ID
	saved, err := s.scheduleRepo.GetByBarber(ctx, req.BarberID)
	if err != nil {
		s.logger.Error("ReplaceWeek: failed to reload schedule for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: ReplaceWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWeek: successfully replaced schedule for barber=%s, %d windows",
		req.BarberID, len(saved))
	return models.FromDomainWindows(req.BarberID, saved), nil
}

// validateWindows проверяет корректность набора окон:
// валидные день недели и диапазон у каждого окна, окна одного дня не пересекаются
func validateWindows(windows []*domain.WorkingWindow) error {
	for _, w := range windows {
		if !w.IsValid() {
			return fmt.Errorf("%w: weekday=%d, start=%s, end=%s", ErrInvalidWindow, w.Weekday, w.StartTime, w.EndTime)
		}
	}

	byDay := domain.WindowsByWeekday(windows)
	for weekday, ws := range byDay {
		for i := 1; i < len(ws); i++ {
			// Окна отсортированы по началу; соседние окна могут соприкасаться,
			// но не пересекаться
			if ws[i].StartTime.IsBefore(ws[i-1].EndTime) {
				return fmt.Errorf("%w: weekday=%d, %s-%s and %s-%s", ErrOverlappingWindows,
					weekday, ws[i-1].StartTime, ws[i-1].EndTime, ws[i].StartTime, ws[i].EndTime)
			}
		}
	}

	return nil
}
