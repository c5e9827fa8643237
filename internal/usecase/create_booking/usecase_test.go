package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type slotKey struct {
	barberID string
	startAt  time.Time
}

// fakeBookingRepo хранит бронирования в памяти и повторяет поведение
// уникального индекса (barber_id, start_at)
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
	taken    map[slotKey]bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{taken: make(map[slotKey]bool)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey{barberID: b.BarberID, startAt: b.StartAt}
	if f.taken[key] {
		return nil, bookingRepo.ErrSlotTaken
	}
	f.taken[key] = true

	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

type fakeScheduleRepo struct {
	windows []*domain.WorkingWindow
}

func (f *fakeScheduleRepo) GetByBarber(_ context.Context, _ string) ([]*domain.WorkingWindow, error) {
	return f.windows, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

// passthroughTxManager выполняет функцию без транзакции:
// атомарность в тестах обеспечивает мьютекс fakeBookingRepo
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mondayWindow(start, end string) *domain.WorkingWindow {
	return &domain.WorkingWindow{
		BarberID:  "barber-1",
		Weekday:   domain.WeekdayMonday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func defaultService() *domain.Service {
	return &domain.Service{
		ID:              10,
		TenantID:        1,
		Name:            "Стрижка",
		Price:           1500,
		DurationMinutes: 30,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, windows []*domain.WorkingWindow, catalog *fakeCatalogRepo) *UseCase {
	uc := NewUseCase(bookings, &fakeScheduleRepo{windows: windows}, catalog, passthroughTxManager{}, 7, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday}
	return uc
}

func validRequest(startTime string) *Request {
	return &Request{
		TenantID:  1,
		ClientID:  "client-1",
		BarberID:  "barber-1",
		ServiceID: 10,
		Date:      monday,
		StartTime: types.TimeString(startTime),
	}
}

func TestExecute_CreatesBookingWithDenormalizedService(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, []*domain.WorkingWindow{mondayWindow("09:00", "11:00")},
		&fakeCatalogRepo{service: defaultService()})

	resp, err := uc.Execute(context.Background(), validRequest("09:30"))
	require.NoError(t, err)

	assert.Equal(t, "client-1", resp.ClientID)
	assert.Equal(t, monday.Add(9*time.Hour+30*time.Minute), resp.StartAt)
	assert.Equal(t, 30, resp.DurationMinutes)
	// Данные услуги зафиксированы на момент коммита
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
}

func TestExecute_SlotOutsideGridRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, []*domain.WorkingWindow{mondayWindow("09:00", "11:00")},
		&fakeCatalogRepo{service: defaultService()})

	// 09:15 не лежит на сетке слотов 30-минутной услуги
	_, err := uc.Execute(context.Background(), validRequest("09:15"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.bookings)
}

func TestExecute_StaleSlotRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, []*domain.WorkingWindow{mondayWindow("09:00", "11:00")},
		&fakeCatalogRepo{service: defaultService()})

	// Первый клиент занимает слот
	_, err := uc.Execute(context.Background(), validRequest("09:30"))
	require.NoError(t, err)

	// Второй клиент выбрал тот же слот по устаревшей выдаче
	_, err = uc.Execute(context.Background(), validRequest("09:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_UniqueViolationMapped(t *testing.T) {
	repo := newFakeBookingRepo()
	// Слот помечен занятым, но список бронирований пуст: повторная генерация
	// слот пропустит, и всё решит уникальный индекс
	repo.taken[slotKey{barberID: "barber-1", startAt: monday.Add(9 * time.Hour)}] = true

	uc := newTestUseCase(repo, []*domain.WorkingWindow{mondayWindow("09:00", "11:00")},
		&fakeCatalogRepo{service: defaultService()})

	_, err := uc.Execute(context.Background(), validRequest("09:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_DateOutsideHorizon(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, []*domain.WorkingWindow{mondayWindow("09:00", "11:00")},
		&fakeCatalogRepo{service: defaultService()})

	past := validRequest("09:00")
	past.Date = monday.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), past)
	assert.ErrorIs(t, err, ErrDateOutsideHorizon)

	tooFar := validRequest("09:00")
	tooFar.Date = monday.AddDate(0, 0, 7)
	_, err = uc.Execute(context.Background(), tooFar)
	assert.ErrorIs(t, err, ErrDateOutsideHorizon)

	// Последний день горизонта ещё бронируем
	lastDay := validRequest("09:00")
	lastDay.Date = monday.AddDate(0, 0, 6)
	uc2 := newTestUseCase(newFakeBookingRepo(),
		[]*domain.WorkingWindow{{BarberID: "barber-1", Weekday: domain.WeekdaySunday, StartTime: "09:00", EndTime: "11:00"}},
		&fakeCatalogRepo{service: defaultService()})
	_, err = uc2.Execute(context.Background(), lastDay)
	assert.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), nil, &fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound})

	_, err := uc.Execute(context.Background(), validRequest("09:00"))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_EmptyScheduleRejected(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), nil, &fakeCatalogRepo{service: defaultService()})

	_, err := uc.Execute(context.Background(), validRequest("09:00"))
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), nil, &fakeCatalogRepo{service: defaultService()})

	noClient := validRequest("09:00")
	noClient.ClientID = ""
	_, err := uc.Execute(context.Background(), noClient)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badTime := validRequest("9am")
	_, err = uc.Execute(context.Background(), badTime)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentCommitsExactlyOneWinner(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, []*domain.WorkingWindow{mondayWindow("09:00", "11:00")},
		&fakeCatalogRepo{service: defaultService()})

	const workers = 16

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest("10:00"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, ErrSlotNotAvailable)
			conflicts++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, repo.bookings, 1)
}
