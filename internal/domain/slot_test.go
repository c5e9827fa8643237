package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func window(weekday int, start, end string) *WorkingWindow {
	return &WorkingWindow{
		BarberID:  "barber-1",
		Weekday:   weekday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func booking(start time.Time, durationMinutes int) *Booking {
	return &Booking{
		BarberID:        "barber-1",
		StartAt:         start,
		DurationMinutes: durationMinutes,
	}
}

func timesOf(day DaySlots) []string {
	out := make([]string, len(day.Times))
	for i, t := range day.Times {
		out[i] = t.String()
	}
	return out
}

func TestGenerateSlots_StepsByServiceDuration(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}

	days := GenerateSlots(windows, 30, nil, 7, monday)

	require.Len(t, days, 1)
	assert.Equal(t, monday, days[0].Date)
	// Конец последнего слота совпадает с концом окна - слот валиден
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, timesOf(days[0]))
}

func TestGenerateSlots_DifferentDurationDifferentGrid(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}

	days := GenerateSlots(windows, 45, nil, 7, monday)

	require.Len(t, days, 1)
	// 10:30 + 45 = 11:15 вышло бы за конец окна
	assert.Equal(t, []string{"09:00", "09:45"}, timesOf(days[0]))
}

func TestGenerateSlots_BookingRemovesExactlyItsSlot(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}
	bookings := []*Booking{booking(monday.Add(9*time.Hour+30*time.Minute), 30)}

	days := GenerateSlots(windows, 30, bookings, 7, monday)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, timesOf(days[0]))
}

func TestGenerateSlots_ForeignDurationBookingBlocksOverlap(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}
	// Бронирование другой услуги: 09:15-10:15, не с нашей сетки
	bookings := []*Booking{booking(monday.Add(9*time.Hour+15*time.Minute), 60)}

	days := GenerateSlots(windows, 30, bookings, 7, monday)

	require.Len(t, days, 1)
	// 09:00, 09:30 и 10:00 пересекаются с [09:15, 10:15), 10:30 - нет
	assert.Equal(t, []string{"10:30"}, timesOf(days[0]))
}

func TestGenerateSlots_BorderingBookingDoesNotConflict(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}
	// Бронирование заканчивается ровно в 09:00 - граничащие интервалы не конфликтуют
	bookings := []*Booking{booking(monday.Add(8*time.Hour), 60)}

	days := GenerateSlots(windows, 30, bookings, 7, monday)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, timesOf(days[0]))
}

func TestGenerateSlots_DaysWithoutWindowsOmitted(t *testing.T) {
	windows := []*WorkingWindow{
		window(WeekdayMonday, "09:00", "10:00"),
		window(4, "14:00", "15:00"), // четверг
	}

	days := GenerateSlots(windows, 30, nil, 7, monday)

	require.Len(t, days, 2)
	assert.Equal(t, monday, days[0].Date)
	assert.Equal(t, monday.AddDate(0, 0, 3), days[1].Date)
}

func TestGenerateSlots_MultipleWindowsSortedWithinDay(t *testing.T) {
	// Окна заданы в обратном порядке - результат всё равно хронологический
	windows := []*WorkingWindow{
		window(WeekdayMonday, "14:00", "15:00"),
		window(WeekdayMonday, "09:00", "10:00"),
	}

	days := GenerateSlots(windows, 30, nil, 7, monday)

	require.Len(t, days, 1)
	assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, timesOf(days[0]))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	windows := []*WorkingWindow{
		window(WeekdayMonday, "09:00", "12:00"),
		window(WeekdaySunday, "10:00", "11:00"),
	}
	bookings := []*Booking{booking(monday.Add(10*time.Hour), 30)}

	first := GenerateSlots(windows, 30, bookings, 7, monday)
	second := GenerateSlots(windows, 30, bookings, 7, monday)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_NonPositiveDurationEmpty(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}

	assert.Empty(t, GenerateSlots(windows, 0, nil, 7, monday))
	assert.Empty(t, GenerateSlots(windows, -15, nil, 7, monday))
}

func TestGenerateSlots_HorizonBounds(t *testing.T) {
	// Окна на каждый день недели
	windows := make([]*WorkingWindow, 0, 7)
	for wd := WeekdayMonday; wd <= WeekdaySunday; wd++ {
		windows = append(windows, window(wd, "09:00", "10:00"))
	}

	days := GenerateSlots(windows, 30, nil, 7, monday)

	require.Len(t, days, 7)
	assert.Equal(t, monday, days[0].Date)
	assert.Equal(t, monday.AddDate(0, 0, 6), days[6].Date)
}

func TestGenerateSlotsForDate_AgreesWithWeekGeneration(t *testing.T) {
	windows := []*WorkingWindow{window(WeekdayMonday, "09:00", "11:00")}
	bookings := []*Booking{booking(monday.Add(9*time.Hour+30*time.Minute), 30)}

	week := GenerateSlots(windows, 30, bookings, 7, monday)
	day := GenerateSlotsForDate(windows, 30, bookings, monday)

	require.Len(t, week, 1)
	assert.Equal(t, week[0].Times, day)
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, WeekdayMonday, ISOWeekday(monday))
	// time.Weekday нумерует воскресенье нулём, ISO - семёркой
	sunday := monday.AddDate(0, 0, 6)
	assert.Equal(t, WeekdaySunday, ISOWeekday(sunday))
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime(monday, types.TimeString("10:30"))
	require.NoError(t, err)
	assert.Equal(t, monday.Add(10*time.Hour+30*time.Minute), got)

	_, err = CombineDateTime(monday, types.TimeString("garbage"))
	assert.Error(t, err)
}

func TestUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 2026-03-02 23:30 UTC-3 - это уже 2026-03-03 в UTC
	local := time.Date(2026, 3, 2, 23, 30, 0, 0, loc)
	assert.Equal(t, monday.AddDate(0, 0, 1), UTCDate(local))
}
