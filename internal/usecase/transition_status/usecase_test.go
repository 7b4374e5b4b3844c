package transition_status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
)

// --- фейки ---

type fakeBookingRepo struct {
	booking *domain.Booking

	updatedStatus *domain.BookingStatus
	updatedPrev   *domain.BookingStatus
	prevWasSet    bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus, previousStatus *domain.BookingStatus) error {
	f.updatedStatus = &status
	f.updatedPrev = previousStatus
	f.prevWasSet = true
	return nil
}

type fakePersonRepo struct {
	persons map[int64]*domain.Person

	updatedVisits map[int64]int
}

func (f *fakePersonRepo) GetByID(_ context.Context, id int64) (*domain.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return nil, personRepo.ErrPersonNotFound
	}
	return p, nil
}

func (f *fakePersonRepo) UpdateVisitsAndTier(_ context.Context, id int64, visitsCount int, _ *domain.LoyaltyTier) error {
	if f.updatedVisits == nil {
		f.updatedVisits = make(map[int64]int)
	}
	f.updatedVisits[id] = visitsCount
	return nil
}

type fakeLoyaltyService struct {
	reconciled []int64
}

func (f *fakeLoyaltyService) ReconcileTier(_ context.Context, clientID int64) error {
	f.reconciled = append(f.reconciled, clientID)
	return nil
}

type fakeInventoryService struct {
	depleted []int64
}

func (f *fakeInventoryService) Deplete(_ context.Context, procedureID int64) error {
	f.depleted = append(f.depleted, procedureID)
	return nil
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

type fixture struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	persons   *fakePersonRepo
	loyalty   *fakeLoyaltyService
	inventory *fakeInventoryService
}

func newFixture(booking *domain.Booking, client *domain.Person) *fixture {
	bookings := &fakeBookingRepo{booking: booking}
	persons := &fakePersonRepo{persons: map[int64]*domain.Person{client.ID: client}}
	loyalty := &fakeLoyaltyService{}
	inventory := &fakeInventoryService{}

	uc := NewUseCase(
		bookings,
		persons,
		loyalty,
		inventory,
		fakeTxManager{},
		nopNotifier{},
		nopBroadcaster{},
		nopLogger{},
	)

	return &fixture{uc: uc, bookings: bookings, persons: persons, loyalty: loyalty, inventory: inventory}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          7,
		ClientID:    1,
		WorkerID:    2,
		ProcedureID: 10,
		Status:      status,
		PaymentType: domain.PaymentCard,
		FinalPrice:  900,
	}
}

func testClient(visits int) *domain.Person {
	return &domain.Person{ID: 1, Name: "Анна", Role: domain.RoleClient, VisitsCount: visits}
}

func adminRequest(newStatus domain.BookingStatus) *Request {
	return &Request{ID: 7, NewStatus: newStatus, ActorID: 100, ActorRole: domain.RoleAdmin}
}

// --- тесты ---

func TestExecute_ConfirmedToFulfilled_AppliesSideEffects(t *testing.T) {
	f := newFixture(testBooking(domain.StatusConfirmed), testClient(11))

	resp, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusFulfilled))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusFulfilled), resp.Status)
	assert.Nil(t, resp.PreviousStatus)

	// Счётчик визитов увеличен, уровень пересчитан, материалы списаны
	assert.Equal(t, 12, f.persons.updatedVisits[1])
	assert.Equal(t, []int64{1}, f.loyalty.reconciled)
	assert.Equal(t, []int64{10}, f.inventory.depleted)
}

func TestExecute_HeldToFulfilled_Rejected(t *testing.T) {
	f := newFixture(testBooking(domain.StatusHeld), testClient(5))

	_, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusFulfilled))

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.inventory.depleted)
	assert.Empty(t, f.loyalty.reconciled)

	// Ошибка несёт исходный и целевой статусы для сообщения пользователю
	var invErr *InvalidTransitionError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, domain.StatusHeld, invErr.From)
	assert.Equal(t, domain.StatusFulfilled, invErr.To)
}

func TestExecute_CancelSnapshotsPreviousStatus(t *testing.T) {
	f := newFixture(testBooking(domain.StatusConfirmed), testClient(5))

	resp, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusCancelled))

	require.NoError(t, err)
	require.NotNil(t, resp.PreviousStatus)
	assert.Equal(t, string(domain.StatusConfirmed), *resp.PreviousStatus)
	require.NotNil(t, f.bookings.updatedPrev)
	assert.Equal(t, domain.StatusConfirmed, *f.bookings.updatedPrev)

	// Отмена неподтверждённого визита не трогает счётчик и склад
	assert.Empty(t, f.persons.updatedVisits)
	assert.Empty(t, f.inventory.depleted)
}

func TestExecute_CancelFulfilled_RollsBackVisitWithoutRestock(t *testing.T) {
	f := newFixture(testBooking(domain.StatusFulfilled), testClient(10))

	resp, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusCancelled))

	require.NoError(t, err)
	require.NotNil(t, resp.PreviousStatus)
	assert.Equal(t, string(domain.StatusFulfilled), *resp.PreviousStatus)

	// Счётчик уменьшен, уровень пересчитан, но материалы не возвращаются
	assert.Equal(t, 9, f.persons.updatedVisits[1])
	assert.Equal(t, []int64{1}, f.loyalty.reconciled)
	assert.Empty(t, f.inventory.depleted)
}

func TestExecute_VisitsNeverGoNegative(t *testing.T) {
	f := newFixture(testBooking(domain.StatusFulfilled), testClient(0))

	_, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusCancelled))

	require.NoError(t, err)
	assert.Equal(t, 0, f.persons.updatedVisits[1])
}

func TestExecute_RestoreClearsSnapshot(t *testing.T) {
	booking := testBooking(domain.StatusCancelled)
	prev := domain.StatusConfirmed
	booking.PreviousStatus = &prev
	f := newFixture(booking, testClient(5))

	resp, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusConfirmed))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.PreviousStatus)
	require.True(t, f.bookings.prevWasSet)
	assert.Nil(t, f.bookings.updatedPrev)
}

func TestExecute_RestoreToOtherStatusRejected(t *testing.T) {
	booking := testBooking(domain.StatusCancelled)
	prev := domain.StatusHeld
	booking.PreviousStatus = &prev
	f := newFixture(booking, testClient(5))

	_, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusConfirmed))

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_ClientCancelsOwnHeldBooking(t *testing.T) {
	f := newFixture(testBooking(domain.StatusHeld), testClient(5))

	resp, err := f.uc.Execute(context.Background(), &Request{
		ID:        7,
		NewStatus: domain.StatusCancelled,
		ActorID:   1,
		ActorRole: domain.RoleClient,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecute_ClientCannotCancelForeignBooking(t *testing.T) {
	f := newFixture(testBooking(domain.StatusHeld), testClient(5))

	_, err := f.uc.Execute(context.Background(), &Request{
		ID:        7,
		NewStatus: domain.StatusCancelled,
		ActorID:   99,
		ActorRole: domain.RoleClient,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_ClientCannotConfirm(t *testing.T) {
	f := newFixture(testBooking(domain.StatusHeld), testClient(5))

	_, err := f.uc.Execute(context.Background(), &Request{
		ID:        7,
		NewStatus: domain.StatusConfirmed,
		ActorID:   1,
		ActorRole: domain.RoleClient,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(testBooking(domain.StatusHeld), testClient(5))

	_, err := f.uc.Execute(context.Background(), &Request{
		ID:        404,
		NewStatus: domain.StatusConfirmed,
		ActorID:   100,
		ActorRole: domain.RoleAdmin,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
