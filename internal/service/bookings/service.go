package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BRB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу бронирования, барберу, к которому запись,
// и администратору барбершопа
func (s *Service) GetByID(ctx context.Context, id int64, actor *domain.Profile) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, actor.ID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", actor.ID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований клиента
// Клиент видит только собственные бронирования: clientID берётся
// из проверенного токена, а не из параметров запроса
func (s *Service) GetUserBookings(ctx context.Context, clientID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for client=%s", clientID)

	if clientID == "" {
		return nil, fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for client=%s", len(bookings), clientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBarberBookings получает бронирования барбера за период
// Доступно самому барберу и администратору барбершопа
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest, actor *domain.Profile) (*models.BookingListResponse, error) {
	s.logger.Info("GetBarberBookings: fetching bookings for barber=%s by user=%s", req.BarberID, actor.ID)

	if req.BarberID == "" {
		return nil, fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("GetBarberBookings: invalid period for barber=%s", req.BarberID)
		return nil, fmt.Errorf("%w: 'from' must be before 'to'", ErrInvalidInput)
	}

	// Расписание барбера - не публичные данные: календарь видят
	// только сам барбер и администратор
	if actor.ID != req.BarberID && !actor.IsAdmin() {
		s.logger.Warn("GetBarberBookings: access denied for user=%s to barber=%s calendar", actor.ID, req.BarberID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByBarberWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: successfully fetched %d bookings for barber=%s", len(bookings), req.BarberID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена - немедленное жёсткое удаление: слот сразу освобождается
// и возвращается в выдачу. Отменить может только создавший клиент
func (s *Service) Cancel(ctx context.Context, id int64, actor *domain.Profile) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%s", id, actor.ID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(actor.ID) {
		s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%d", actor.ID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during deletion", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// checkReadAccess проверяет право чтения бронирования
func (s *Service) checkReadAccess(booking *domain.Booking, actor *domain.Profile) error {
	if booking.IsOwnedBy(actor.ID) {
		return nil
	}
	if booking.BarberID == actor.ID {
		return nil
	}
	if actor.IsAdmin() && actor.BelongsTo(booking.TenantID) {
		return nil
	}
	return ErrAccessDenied
}
