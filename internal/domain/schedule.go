package domain

import (
	"sort"
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// WorkingWindow еженедельное рабочее окно барбера
// Исторически в данных встречались обе нумерации дней недели (JS 0-6 и ISO 1-7);
// канонической выбрана ISO 8601 (понедельник = 1 ... воскресенье = 7),
// конвертация из time.Weekday выполняется на границе через ISOWeekday.
// На один день недели допускается несколько непересекающихся окон.
type WorkingWindow struct {
	ID        int64
	BarberID  string
	Weekday   int // ISO 1..7
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsValid returns true if the window has a valid weekday and a non-empty range
func (w *WorkingWindow) IsValid() bool {
	if w.Weekday < WeekdayMonday || w.Weekday > WeekdaySunday {
		return false
	}
	if w.StartTime.Validate() != nil || w.EndTime.Validate() != nil {
		return false
	}
	return w.StartTime.IsBefore(w.EndTime)
}

// ISOWeekday возвращает ISO 8601 номер дня недели (понедельник = 1 ... воскресенье = 7)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return WeekdaySunday
	}
	return wd
}

// WindowsByWeekday группирует окна по дню недели, окна внутри дня
// сортируются по времени начала
func WindowsByWeekday(windows []*WorkingWindow) map[int][]*WorkingWindow {
	byDay := make(map[int][]*WorkingWindow, len(windows))
	for _, w := range windows {
		byDay[w.Weekday] = append(byDay[w.Weekday], w)
	}
	for _, ws := range byDay {
		sort.Slice(ws, func(i, j int) bool {
			return ws[i].StartTime.IsBefore(ws[j].StartTime)
		})
	}
	return byDay
}
