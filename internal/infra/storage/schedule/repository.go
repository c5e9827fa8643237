package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с рабочими окнами барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarber получает все рабочие окна барбера
// Окна отсортированы по дню недели и времени начала
func (r *Repository) GetByBarber(ctx context.Context, barberID string) ([]*domain.WorkingWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barber_id",
		"weekday",
		"start_time",
		"end_time",
	).
		From("working_windows").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.WorkingWindow, 0)

	for rows.Next() {
		var w domain.WorkingWindow
		if err := rows.Scan(&w.ID, &w.BarberID, &w.Weekday, &w.StartTime, &w.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetByBarber - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// ReplaceForBarber заменяет недельное расписание барбера целиком
// Расписание сохраняется только целиком (replace-on-save): сначала удаляются
// все окна барбера, затем вставляется новый набор. Вызывающий код обязан
// обернуть вызов в транзакцию, иначе между DELETE и INSERT возможно
// окно без расписания.
func (r *Repository) ReplaceForBarber(ctx context.Context, barberID string, windows []*domain.WorkingWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_windows").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("working_windows").
		Columns("barber_id", "weekday", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(barberID, w.Weekday, w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
