package domain

import (
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// DaySlots доступные слоты на одну календарную дату (UTC)
// Времена упорядочены по возрастанию
type DaySlots struct {
	Date  time.Time
	Times []types.TimeString
}

// Слоты эфемерны: генерируются заново на каждый запрос и никогда не сохраняются.
// Обе операции - выдача слотов и подтверждение бронирования - используют
// одну и ту же функцию генерации, поэтому проверка на коммите всегда
// согласована с тем, что было показано клиенту.

// UTCDate обнуляет время, оставляя календарную дату в UTC
// Вся слотовая арифметика выполняется в UTC, чтобы переходы на летнее время
// не искажали сетку
func UTCDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CombineDateTime собирает абсолютный момент UTC из даты и времени суток
func CombineDateTime(date time.Time, t types.TimeString) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return UTCDate(date).Add(time.Duration(minutes) * time.Minute), nil
}

// GenerateSlots вычисляет доступные слоты на horizonDays календарных дней
// начиная с даты now (включительно).
//
// Сетка слотов выводится из начала рабочего окна шагом durationMinutes:
// глобальной привязки (например, к началу часа) нет, поэтому услуги с разной
// длительностью дают разные сетки у одного барбера.
// Слот валиден, пока его конец не выходит за конец окна (конец ровно в
// конец окна допустим). Слот доступен, если его интервал не пересекается
// ни с одним существующим бронированием (пересечение интервалов, строгие
// неравенства: граничащие интервалы не конфликтуют).
//
// Дни без рабочих окон в результат не попадают.
// durationMinutes <= 0 - вырожденный вход: пустой результат, не ошибка.
func GenerateSlots(
	windows []*WorkingWindow,
	durationMinutes int,
	bookings []*Booking,
	horizonDays int,
	now time.Time,
) []DaySlots {
	result := make([]DaySlots, 0, horizonDays)

	if durationMinutes <= 0 {
		return result
	}

	byDay := WindowsByWeekday(windows)
	today := UTCDate(now)

	for i := 0; i < horizonDays; i++ {
		date := today.AddDate(0, 0, i)

		times := generateSlotsForDate(byDay[ISOWeekday(date)], durationMinutes, bookings, date)
		if len(times) == 0 {
			continue
		}

		result = append(result, DaySlots{Date: date, Times: times})
	}

	return result
}

// GenerateSlotsForDate вычисляет доступные слоты на одну дату
// Используется коммитом бронирования для повторной проверки выбранного слота
func GenerateSlotsForDate(
	windows []*WorkingWindow,
	durationMinutes int,
	bookings []*Booking,
	date time.Time,
) []types.TimeString {
	if durationMinutes <= 0 {
		return []types.TimeString{}
	}
	byDay := WindowsByWeekday(windows)
	return generateSlotsForDate(byDay[ISOWeekday(date)], durationMinutes, bookings, date)
}

func generateSlotsForDate(
	dayWindows []*WorkingWindow,
	durationMinutes int,
	bookings []*Booking,
	date time.Time,
) []types.TimeString {
	times := make([]types.TimeString, 0)

	for _, w := range dayWindows {
		current := w.StartTime

		for {
			slotEnd, err := current.AddMinutes(durationMinutes)
			if err != nil || slotEnd.IsAfter(w.EndTime) {
				break
			}

			if !overlapsAnyBooking(date, current, slotEnd, bookings) {
				times = append(times, current)
			}

			current = slotEnd
		}
	}

	return times
}

// overlapsAnyBooking проверяет пересечение кандидата с существующими бронированиями
// Учитывается собственная длительность каждого бронирования: бронирование
// с другой сеткой (другой услугой) тоже блокирует пересекающиеся слоты
func overlapsAnyBooking(date time.Time, slotStart, slotEnd types.TimeString, bookings []*Booking) bool {
	absStart, err := CombineDateTime(date, slotStart)
	if err != nil {
		return false
	}
	absEnd, err := CombineDateTime(date, slotEnd)
	if err != nil {
		return false
	}

	for _, b := range bookings {
		// Интервалы пересекаются, только если начало одного СТРОГО раньше
		// конца другого в обе стороны; граничащие интервалы не конфликтуют
		if b.StartAt.Before(absEnd) && b.EndAt().After(absStart) {
			return true
		}
	}

	return false
}
