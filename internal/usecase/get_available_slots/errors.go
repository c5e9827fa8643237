package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в барбершопе
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrScheduleNotConfigured возвращается, когда у барбера нет ни одного
	// рабочего окна - его нельзя забронировать вообще, в отличие от
	// "на эти дни свободных слотов нет"
	ErrScheduleNotConfigured = errors.New("get_available_slots: barber has no working schedule")

	// ErrServiceNotBookable возвращается, когда у услуги не задана
	// положительная длительность - сетку слотов построить невозможно
	ErrServiceNotBookable = errors.New("get_available_slots: service has no usable duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
