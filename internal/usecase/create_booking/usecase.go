package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
//
// Валидация и запись выполняются в одной сериализуемой транзакции:
// повторная генерация слотов на выбранную дату использует ту же функцию,
// что и выдача слотов клиенту, поэтому коммит и показ всегда согласованы.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
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
		txManager:    txManager,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных;
// финальным арбитром двойного бронирования служит уникальный индекс
// (barber_id, start_at) в базе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%d, client=%s, barber=%s, service=%d, date=%s, time=%s",
		req.TenantID, req.ClientID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Дата должна попадать в рассчитываемый горизонт:
	// слот вне горизонта не мог быть показан клиенту
	if err := validateDateWithinHorizon(req.Date, now, uc.horizonDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем услугу (длительность читается свежей внутри транзакции)
		service, err := uc.catalogRepo.GetByID(txCtx, req.TenantID, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found in tenant=%d", req.ServiceID, req.TenantID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		if !service.IsBookable() {
			uc.logger.Warn("CreateBooking: service id=%d has non-positive duration", req.ServiceID)
			return ErrServiceNotBookable
		}

		// 4.2. Получаем рабочие окна барбера
		windows, err := uc.scheduleRepo.GetByBarber(txCtx, req.BarberID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule for barber=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if len(windows) == 0 {
			uc.logger.Warn("CreateBooking: barber=%s has no working windows", req.BarberID)
			return ErrScheduleNotConfigured
		}

		// 4.3. Получаем бронирования барбера на выбранную дату с блокировкой (FOR UPDATE)
		day := domain.UTCDate(req.Date)
		nextDay := day.AddDate(0, 0, 1)
		bookings, err := uc.bookingRepo.GetByBarberWithFilter(txCtx, domain.BarberBookingsFilter{
			BarberID: req.BarberID,
			From:     &day,
			To:       &nextDay,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for barber=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.4. Повторно генерируем слоты на дату той же функцией, что и выдача,
		// и требуем членства выбранного времени в актуальном списке
		available := domain.GenerateSlotsForDate(windows, service.DurationMinutes, bookings, day)
		if !containsSlot(available, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s %s is not available for barber=%s",
				day.Format(domain.DateFormat), req.StartTime, req.BarberID)
			return ErrSlotNotAvailable
		}

		// 4.5. Собираем абсолютный момент начала (UTC)
		startAt, err := domain.CombineDateTime(day, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compose start time: %v", err)
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}

		// 4.6. Создаем бронирование с денормализацией данных услуги:
		// имя, цена и длительность фиксируются на момент коммита
		booking := &domain.Booking{
			TenantID:        req.TenantID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			ClientID:        req.ClientID,
			StartAt:         startAt,
			DurationMinutes: service.DurationMinutes,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс (barber_id, start_at) - финальный арбитр:
			// проигравший конкурентный коммит получает тот же ответ,
			// что и устаревший слот
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost race for slot %s %s, barber=%s",
					day.Format(domain.DateFormat), req.StartTime, req.BarberID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		TenantID:        result.TenantID,
		ClientID:        result.ClientID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		StartAt:         result.StartAt,
		Date:            domain.UTCDate(result.StartAt),
		StartTime:       req.StartTime,
		DurationMinutes: result.DurationMinutes,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		CreatedAt:       result.CreatedAt,
	}, nil
}
