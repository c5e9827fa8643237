package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeScheduleRepo struct {
	windows []*domain.WorkingWindow
	err     error
}

func (f *fakeScheduleRepo) GetByBarber(_ context.Context, _ string) ([]*domain.WorkingWindow, error) {
	return f.windows, f.err
}

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, schedule *fakeScheduleRepo, catalog *fakeCatalogRepo) *UseCase {
	uc := NewUseCase(bookings, schedule, catalog, 7, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday}
	return uc
}

func validRequest() *Request {
	return &Request{TenantID: 1, BarberID: "barber-1", ServiceID: 10}
}

func mondayWindow(start, end string) *domain.WorkingWindow {
	return &domain.WorkingWindow{
		BarberID:  "barber-1",
		Weekday:   domain.WeekdayMonday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{windows: []*domain.WorkingWindow{mondayWindow("09:00", "11:00")}},
		&fakeCatalogRepo{service: &domain.Service{ID: 10, TenantID: 1, Name: "Стрижка", DurationMinutes: 30}},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "barber-1", resp.BarberID)
	assert.Equal(t, 7, resp.HorizonDays)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, monday, resp.Days[0].Date)
	require.Len(t, resp.Days[0].Times, 4)
	assert.Equal(t, "09:00", resp.Days[0].Times[0].String())
}

func TestExecute_ExistingBookingRemovesSlot(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{{
			BarberID:        "barber-1",
			StartAt:         monday.Add(9*time.Hour + 30*time.Minute),
			DurationMinutes: 30,
		}}},
		&fakeScheduleRepo{windows: []*domain.WorkingWindow{mondayWindow("09:00", "11:00")}},
		&fakeCatalogRepo{service: &domain.Service{ID: 10, TenantID: 1, DurationMinutes: 30}},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	times := make([]string, 0, len(resp.Days[0].Times))
	for _, ts := range resp.Days[0].Times {
		times = append(times, ts.String())
	}
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, times)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_EmptyScheduleIsConfigurationError(t *testing.T) {
	// Пустое расписание - не "нет свободных слотов", а отсутствие конфигурации
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{windows: nil},
		&fakeCatalogRepo{service: &domain.Service{ID: 10, TenantID: 1, DurationMinutes: 30}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_ServiceWithoutDurationNotBookable(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{windows: []*domain.WorkingWindow{mondayWindow("09:00", "11:00")}},
		&fakeCatalogRepo{service: &domain.Service{ID: 10, TenantID: 1, DurationMinutes: 0}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogRepo{})

	cases := []*Request{
		{TenantID: 0, BarberID: "barber-1", ServiceID: 10},
		{TenantID: 1, BarberID: "", ServiceID: 10},
		{TenantID: 1, BarberID: "barber-1", ServiceID: 0},
	}
	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeScheduleRepo{windows: []*domain.WorkingWindow{mondayWindow("09:00", "11:00")}},
		&fakeCatalogRepo{service: &domain.Service{ID: 10, TenantID: 1, DurationMinutes: 30}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
