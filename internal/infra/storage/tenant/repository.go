package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения барбершопов
// Записи создаёт внешняя система регистрации, здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория tenant'ов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает барбершоп по slug (поддомену)
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getByCondition(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

// GetByID получает барбершоп по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	return r.getByCondition(ctx, squirrel.Eq{"id": id}, "GetByID")
}

func (r *Repository) getByCondition(ctx context.Context, cond squirrel.Eq, op string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slug", "name", "created_at").
		From("tenants").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var tenant domain.Tenant
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.Name,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %v", ErrScanRow, op, err)
	}

	tenant.CreatedAt = createdAt.Time

	return &tenant, nil
}
