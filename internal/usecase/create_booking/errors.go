package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в барбершопе
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrScheduleNotConfigured возвращается, когда у барбера нет рабочих окон
	ErrScheduleNotConfigured = errors.New("create_booking: barber has no working schedule")

	// ErrServiceNotBookable возвращается, когда у услуги не задана
	// положительная длительность
	ErrServiceNotBookable = errors.New("create_booking: service has no usable duration")

	// ErrSlotNotAvailable возвращается, когда выбранный слот больше недоступен:
	// гонка между показом слотов и коммитом, либо проигрыш конкурентному коммиту
	ErrSlotNotAvailable = errors.New("create_booking: slot is no longer available")

	// ErrDateOutsideHorizon возвращается, когда дата вне рассчитываемого горизонта
	ErrDateOutsideHorizon = errors.New("create_booking: date is outside the booking horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
