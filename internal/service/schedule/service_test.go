package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	windows      []*domain.WorkingWindow
	replaceCalls int
	inTx         bool
}

func (f *fakeScheduleRepo) GetByBarber(_ context.Context, _ string) ([]*domain.WorkingWindow, error) {
	return f.windows, nil
}

func (f *fakeScheduleRepo) ReplaceForBarber(ctx context.Context, barberID string, windows []*domain.WorkingWindow) error {
	f.replaceCalls++
	f.inTx = ctx.Value(txMarker{}) != nil

	// Полная замена: прежний набор отбрасывается
	f.windows = make([]*domain.WorkingWindow, 0, len(windows))
	for i, w := range windows {
		saved := *w
		saved.ID = int64(i + 1)
		saved.BarberID = barberID
		f.windows = append(f.windows, &saved)
	}
	return nil
}

type txMarker struct{}

// markingTxManager помечает контекст, чтобы проверить, что замена
// выполняется внутри транзакции
type markingTxManager struct{}

func (markingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func barberActor() *domain.Profile {
	return &domain.Profile{ID: "barber-1", TenantID: 1, Role: domain.RoleBarber}
}

func adminActor() *domain.Profile {
	return &domain.Profile{ID: "admin-1", TenantID: 1, Role: domain.RoleAdmin}
}

func weekRequest(windows ...models.WindowPayload) *models.ReplaceWeekRequest {
	return &models.ReplaceWeekRequest{BarberID: "barber-1", Windows: windows}
}

func TestReplaceWeek_ReplacesWholeWeek(t *testing.T) {
	repo := &fakeScheduleRepo{windows: []*domain.WorkingWindow{
		{ID: 100, BarberID: "barber-1", Weekday: 2, StartTime: "08:00", EndTime: "12:00"},
	}}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	resp, err := svc.ReplaceWeek(context.Background(), weekRequest(
		models.WindowPayload{Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
		models.WindowPayload{Weekday: 1, StartTime: "14:00", EndTime: "18:00"},
		models.WindowPayload{Weekday: 6, StartTime: "10:00", EndTime: "15:00"},
	), barberActor())
	require.NoError(t, err)

	// Прежнее окно вторника исчезло: присланный набор - единственный источник истины
	require.Len(t, resp.Windows, 3)
	assert.Equal(t, 1, resp.Windows[0].Weekday)
	assert.Equal(t, "09:00", resp.Windows[0].StartTime)
	assert.Equal(t, 1, repo.replaceCalls)
	assert.True(t, repo.inTx, "replace must run inside a transaction")
}

func TestReplaceWeek_EmptyWeekClearsSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{windows: []*domain.WorkingWindow{
		{ID: 100, BarberID: "barber-1", Weekday: 2, StartTime: "08:00", EndTime: "12:00"},
	}}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	resp, err := svc.ReplaceWeek(context.Background(), weekRequest(), barberActor())
	require.NoError(t, err)

	assert.Empty(t, resp.Windows)
	assert.Empty(t, repo.windows)
}

func TestReplaceWeek_AdminAllowed(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	_, err := svc.ReplaceWeek(context.Background(), weekRequest(
		models.WindowPayload{Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
	), adminActor())
	assert.NoError(t, err)
}

func TestReplaceWeek_OtherBarberDenied(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	other := &domain.Profile{ID: "barber-2", TenantID: 1, Role: domain.RoleBarber}
	_, err := svc.ReplaceWeek(context.Background(), weekRequest(
		models.WindowPayload{Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
	), other)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.replaceCalls)
}

func TestReplaceWeek_InvalidWindowRejected(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	cases := []models.WindowPayload{
		{Weekday: 0, StartTime: "09:00", EndTime: "13:00"}, // день вне ISO 1..7
		{Weekday: 8, StartTime: "09:00", EndTime: "13:00"},
		{Weekday: 1, StartTime: "13:00", EndTime: "09:00"}, // конец раньше начала
		{Weekday: 1, StartTime: "09:00", EndTime: "09:00"}, // пустой диапазон
		{Weekday: 1, StartTime: "garbage", EndTime: "13:00"},
	}
	for _, payload := range cases {
		_, err := svc.ReplaceWeek(context.Background(), weekRequest(payload), barberActor())
		assert.ErrorIs(t, err, ErrInvalidWindow, "%+v", payload)
	}
	assert.Zero(t, repo.replaceCalls)
}

func TestReplaceWeek_OverlappingWindowsRejected(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	_, err := svc.ReplaceWeek(context.Background(), weekRequest(
		models.WindowPayload{Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
		models.WindowPayload{Weekday: 1, StartTime: "12:00", EndTime: "18:00"},
	), barberActor())
	assert.ErrorIs(t, err, ErrOverlappingWindows)
}

func TestReplaceWeek_TouchingWindowsAllowed(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, markingTxManager{}, nopLogger{})

	// Соприкасающиеся окна не пересекаются
	_, err := svc.ReplaceWeek(context.Background(), weekRequest(
		models.WindowPayload{Weekday: 1, StartTime: "09:00", EndTime: "13:00"},
		models.WindowPayload{Weekday: 1, StartTime: "13:00", EndTime: "18:00"},
	), barberActor())
	assert.NoError(t, err)
}

func TestGetWeek_EmptyScheduleIsValid(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, markingTxManager{}, nopLogger{})

	resp, err := svc.GetWeek(context.Background(), "barber-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}
