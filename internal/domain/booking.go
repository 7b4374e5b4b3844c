package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusHeld      BookingStatus = "held"
	StatusConfirmed BookingStatus = "confirmed"
	StatusFulfilled BookingStatus = "fulfilled"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentType represents how the client pays for a booking
type PaymentType string

const (
	PaymentCash    PaymentType = "cash"
	PaymentCard    PaymentType = "card"
	PaymentDeposit PaymentType = "deposit"
)

// Booking represents a reserved time window linking a client, a worker and a procedure
type Booking struct {
	ID          int64
	ClientID    int64
	WorkerID    int64
	ProcedureID int64
	StartsAt    time.Time
	EndsAt      time.Time
	Status      BookingStatus

	// PreviousStatus is set only while Status == cancelled and records
	// the state to restore to on undo
	PreviousStatus *BookingStatus

	PaymentType PaymentType
	FinalPrice  float64
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// forwardTransitions допустимые переходы вперёд по жизненному циклу
var forwardTransitions = map[BookingStatus]BookingStatus{
	StatusHeld:      StatusConfirmed,
	StatusConfirmed: StatusFulfilled,
}

// IsActive returns true if the booking occupies its time window
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsFulfilled returns true if the booking has been fulfilled
func (b *Booking) IsFulfilled() bool {
	return b.Status == StatusFulfilled
}

// CanBeDeleted returns true if the booking may be hard-deleted
// Выполненные бронирования не удаляются, только отменяются
func (b *Booking) CanBeDeleted() bool {
	return b.Status != StatusFulfilled
}

// CanTransitionTo проверяет допустимость перехода статуса:
// held -> confirmed -> fulfilled; отмена из любого не-отменённого статуса;
// из cancelled только обратно в сохранённый PreviousStatus
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	if target == StatusCancelled {
		return b.Status != StatusCancelled
	}

	if b.Status == StatusCancelled {
		return b.PreviousStatus != nil && *b.PreviousStatus == target
	}

	return forwardTransitions[b.Status] == target
}

// IsValidStatus returns true if s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusHeld, StatusConfirmed, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// IsValidPaymentType returns true if p is a known payment type
func IsValidPaymentType(p PaymentType) bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentDeposit:
		return true
	}
	return false
}

// Overlaps проверяет пересечение полуинтервалов [s1, e1) и [s2, e2)
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date       *time.Time     // Конкретная дата (опционально)
	StartDate  *time.Time     // Начало периода (опционально)
	EndDate    *time.Time     // Конец периода (опционально)
	ClientName *string        // Подстрока имени клиента, без учета регистра (опционально)
	WorkerName *string        // Подстрока имени мастера (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}

// BookingSort поле сортировки списка бронирований
type BookingSort string

const (
	SortByStartsAt   BookingSort = "startsAt"
	SortByCreatedAt  BookingSort = "createdAt"
	SortByPrice      BookingSort = "price"
	SortByClientName BookingSort = "clientName"
	SortByWorkerName BookingSort = "workerName"
	SortByDuration   BookingSort = "duration"
)

// IsValidSort returns true if s is a known sort field
func IsValidSort(s BookingSort) bool {
	switch s {
	case SortByStartsAt, SortByCreatedAt, SortByPrice, SortByClientName, SortByWorkerName, SortByDuration:
		return true
	}
	return false
}
