package domain

// Default configuration values
const (
	DefaultHorizonDays = 7 // Горизонт расчёта доступных слотов в днях
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServiceNameLength      = 200
	MaxWindowsPerWeekday      = 4
)

// Weekday constants (ISO 8601: понедельник = 1 ... воскресенье = 7)
const (
	WeekdayMonday = 1
	WeekdaySunday = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Роли профилей (владелец профилей - внешний auth-сервис)
const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
	RoleClient = "client"
)
