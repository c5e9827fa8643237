package authservice

// Profile профиль пользователя из auth-сервиса
// ID совпадает с идентификатором пользователя в системе аутентификации
type Profile struct {
	ID       string `json:"id"`
	TenantID int64  `json:"tenantId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"` // admin | barber | client
}

// ErrorResponse модель ошибки от auth-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
