package domain

import "time"

// Tenant барбершоп в multi-tenant системе
// Запись принадлежит внешней системе регистрации; здесь только чтение
// для резолва поддомена в tenant
type Tenant struct {
	ID        int64
	Slug      string // Поддомен ("ze-barbearia" в ze-barbearia.example.com)
	Name      string
	CreatedAt time.Time
}

// Profile профиль пользователя из auth-сервиса
// ID совпадает с идентификатором пользователя в системе аутентификации
type Profile struct {
	ID       string
	TenantID int64
	FullName string
	Role     string // admin | barber | client
}

// IsAdmin returns true if the profile belongs to a tenant admin
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsBarber returns true if the profile belongs to a barber
func (p *Profile) IsBarber() bool {
	return p.Role == RoleBarber
}

// BelongsTo returns true if the profile belongs to the given tenant
func (p *Profile) BelongsTo(tenantID int64) bool {
	return p.TenantID == tenantID
}
