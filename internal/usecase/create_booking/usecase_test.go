package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// --- фейки ---

type fakeBookingRepo struct {
	overlaps map[int64]int // personID -> количество пересечений
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	b := *booking
	b.ID = 42
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = &b
	return &b, nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, personID int64, _, _ time.Time, _ *int64) (int, error) {
	return f.overlaps[personID], nil
}

type fakePersonRepo struct {
	persons map[int64]*domain.Person
}

func (f *fakePersonRepo) GetByID(_ context.Context, id int64) (*domain.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return nil, personRepo.ErrPersonNotFound
	}
	return p, nil
}

type fakeProcedureRepo struct {
	procedures map[int64]*domain.Procedure
}

func (f *fakeProcedureRepo) GetByID(_ context.Context, id int64) (*domain.Procedure, error) {
	p, ok := f.procedures[id]
	if !ok {
		return nil, procedureRepo.ErrProcedureNotFound
	}
	return p, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, domain.BookingEvent) {}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(context.Context, domain.EventType, *domain.Booking) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func newTestUseCase(bookings *fakeBookingRepo, persons *fakePersonRepo, procedures *fakeProcedureRepo) *UseCase {
	return NewUseCase(
		bookings,
		persons,
		procedures,
		fakeTxManager{},
		nopNotifier{},
		nopBroadcaster{},
		domain.DefaultSchedule(),
		domain.DefaultDiscounts(),
		nopLogger{},
	)
}

func defaultPersons() *fakePersonRepo {
	gold := domain.TierGold
	return &fakePersonRepo{persons: map[int64]*domain.Person{
		1: {ID: 1, Name: "Анна", Role: domain.RoleClient, VisitsCount: 55, LoyaltyTier: &gold},
		2: {ID: 2, Name: "Мария", Role: domain.RoleWorker},
		3: {ID: 3, Name: "Пётр", Role: domain.RoleClient},
	}}
}

func defaultProcedures() *fakeProcedureRepo {
	return &fakeProcedureRepo{procedures: map[int64]*domain.Procedure{
		10: {ID: 10, Name: "Стрижка", DurationMinutes: 60, Price: 1000},
	}}
}

// monday 2026-03-02
func window(h, m, durMinutes int) (time.Time, time.Time) {
	start := time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	return start, start.Add(time.Duration(durMinutes) * time.Minute)
}

func validRequest() *Request {
	start, end := window(10, 0, 60)
	return &Request{
		ClientID:    1,
		WorkerID:    2,
		ProcedureID: 10,
		StartsAt:    start,
		EndsAt:      end,
		PaymentType: domain.PaymentCard,
	}
}

// --- тесты ---

func TestExecute_Success_PriceSnapshot(t *testing.T) {
	bookings := &fakeBookingRepo{overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings, defaultPersons(), defaultProcedures())

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusHeld), resp.Status)
	// Клиент с уровнем gold платит 80% от цены процедуры
	assert.InDelta(t, 800.0, resp.FinalPrice, 0.001)
	require.NotNil(t, bookings.created)
	assert.InDelta(t, 800.0, bookings.created.FinalPrice, 0.001)
}

func TestExecute_ClientWithoutTierPaysFullPrice(t *testing.T) {
	bookings := &fakeBookingRepo{overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.ClientID = 3

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.InDelta(t, 1000.0, resp.FinalPrice, 0.001)
}

func TestExecute_WorkerConflict(t *testing.T) {
	bookings := &fakeBookingRepo{overlaps: map[int64]int{2: 1}}
	uc := newTestUseCase(bookings, defaultPersons(), defaultProcedures())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrWorkerConflict)
	assert.Nil(t, bookings.created)
}

func TestExecute_ClientConflict(t *testing.T) {
	bookings := &fakeBookingRepo{overlaps: map[int64]int{1: 1}}
	uc := newTestUseCase(bookings, defaultPersons(), defaultProcedures())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClientConflict)
	assert.Nil(t, bookings.created)
}

func TestExecute_ClientEqualsWorker(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{overlaps: map[int64]int{}}, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.WorkerID = req.ClientID

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PersonWithClientRoleAsWorker(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{overlaps: map[int64]int{}}, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.WorkerID = 3

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotAWorker)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{overlaps: map[int64]int{}}, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.StartsAt, req.EndsAt = window(7, 0, 60) // до открытия салона

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_WeekendRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{overlaps: map[int64]int{}}, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.StartsAt = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC) // суббота
	req.EndsAt = req.StartsAt.Add(time.Hour)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotWorkday)
}

func TestExecute_InitialStatusConfirmed(t *testing.T) {
	bookings := &fakeBookingRepo{overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.Status = ptr.Ptr(domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_InitialStatusFulfilledRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{overlaps: map[int64]int{}}, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.Status = ptr.Ptr(domain.StatusFulfilled)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ClientNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{overlaps: map[int64]int{}}, defaultPersons(), defaultProcedures())

	req := validRequest()
	req.ClientID = 99

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrClientNotFound)
}
