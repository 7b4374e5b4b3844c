package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// --- фейки ---

type fakeBookingRepo struct {
	booking  *domain.Booking
	overlaps map[int64]int

	overlapChecks []int64 // personID в порядке вызовов
	updated       *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	b := *booking
	f.updated = &b
	return nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, personID int64, _, _ time.Time, excludeID *int64) (int, error) {
	f.overlapChecks = append(f.overlapChecks, personID)
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

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	persons := &fakePersonRepo{persons: map[int64]*domain.Person{
		1: {ID: 1, Name: "Анна", Role: domain.RoleClient},
		2: {ID: 2, Name: "Мария", Role: domain.RoleWorker},
		4: {ID: 4, Name: "Ольга", Role: domain.RoleWorker},
		5: {ID: 5, Name: "Борис", Role: domain.RoleClient},
	}}
	procedures := &fakeProcedureRepo{procedures: map[int64]*domain.Procedure{
		10: {ID: 10, Name: "Стрижка", DurationMinutes: 60, Price: 1000},
	}}
	return NewUseCase(
		bookings,
		persons,
		procedures,
		fakeTxManager{},
		nopNotifier{},
		nopBroadcaster{},
		domain.DefaultSchedule(),
		nopLogger{},
	)
}

func testBooking() *domain.Booking {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:          7,
		ClientID:    1,
		WorkerID:    2,
		ProcedureID: 10,
		StartsAt:    start,
		EndsAt:      start.Add(time.Hour),
		Status:      domain.StatusHeld,
		PaymentType: domain.PaymentCard,
		FinalPrice:  950,
	}
}

func adminRequest() *Request {
	return &Request{ID: 7, ActorID: 100, ActorRole: domain.RoleAdmin}
}

// --- тесты ---

func TestExecute_NotesOnlyChangeSkipsOverlapCheck(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	req.Notes = ptr.Ptr("перенести кресло к окну")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "перенести кресло к окну", *resp.Notes)
	// Время и мастер не менялись - пересечения не перепроверяются
	assert.Empty(t, bookings.overlapChecks)
	require.NotNil(t, bookings.updated)
}

func TestExecute_TimeChangeRechecksOverlaps(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	newStart := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	req.StartsAt = ptr.Ptr(newStart)
	req.EndsAt = ptr.Ptr(newStart.Add(time.Hour))

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Сначала мастер, потом клиент
	assert.Equal(t, []int64{2, 1}, bookings.overlapChecks)
}

func TestExecute_WorkerChangeConflict(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{4: 1}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	req.WorkerID = ptr.Ptr(int64(4))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrWorkerConflict)
	assert.Nil(t, bookings.updated)
}

func TestExecute_ClientUpdatesOwnBooking(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := &Request{ID: 7, ActorID: 1, ActorRole: domain.RoleClient, Notes: ptr.Ptr("приду пораньше")}

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_ClientCannotUpdateForeignBooking(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := &Request{ID: 7, ActorID: 5, ActorRole: domain.RoleClient, Notes: ptr.Ptr("x")}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_MoveOutsideOperatingHoursRejected(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	newStart := time.Date(2026, 3, 2, 19, 30, 0, 0, time.UTC)
	req.StartsAt = ptr.Ptr(newStart)
	req.EndsAt = ptr.Ptr(newStart.Add(time.Hour)) // до 20:30, салон закрывается в 20:00

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_NewWorkerMustHaveWorkerRole(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	req.WorkerID = ptr.Ptr(int64(5)) // Борис - клиент

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotAWorker)
}

func TestExecute_NegativePriceRejected(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking(), overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	req.FinalPrice = ptr.Ptr(-10.0)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{overlaps: map[int64]int{}}
	uc := newTestUseCase(bookings)

	req := adminRequest()
	req.Notes = ptr.Ptr("x")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
