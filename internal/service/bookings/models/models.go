package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidSort возвращается при некорректном поле сортировки
	ErrInvalidSort = errors.New("invalid sort field")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Date       *time.Time `json:"date,omitempty"`       // Конкретная дата (опционально)
	StartDate  *time.Time `json:"startDate,omitempty"`  // Начало периода (опционально)
	EndDate    *time.Time `json:"endDate,omitempty"`    // Конец периода (опционально)
	ClientName *string    `json:"clientName,omitempty"` // Подстрока имени клиента (опционально)
	WorkerName *string    `json:"workerName,omitempty"` // Подстрока имени мастера (опционально)
	Status     *string    `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	SortBy     *string    `json:"sortBy,omitempty"`     // Поле сортировки (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:       r.Date,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		ClientName: r.ClientName,
		WorkerName: r.WorkerName,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// SortField возвращает валидированное поле сортировки (по умолчанию startsAt)
func (r *ListBookingsRequest) SortField() (domain.BookingSort, error) {
	if r.SortBy == nil {
		return domain.SortByStartsAt, nil
	}
	sort := domain.BookingSort(*r.SortBy)
	if !domain.IsValidSort(sort) {
		return "", ErrInvalidSort
	}
	return sort, nil
}

// Response модели

// BookingView проекция бронирования с резолвом ссылок
// Имена и длительность nullable: ссылка может указывать на удалённую запись
type BookingView struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	WorkerID        int64   `json:"workerId"`
	ProcedureID     int64   `json:"procedureId"`
	StartsAt        string  `json:"startsAt"` // ISO 8601
	EndsAt          string  `json:"endsAt"`
	Status          string  `json:"status"`
	PreviousStatus  *string `json:"previousStatus,omitempty"`
	PaymentType     string  `json:"paymentType"`
	FinalPrice      float64 `json:"finalPrice"`
	Notes           *string `json:"notes,omitempty"`
	ClientName      *string `json:"clientName"`
	WorkerName      *string `json:"workerName"`
	ProcedureName   *string `json:"procedureName"`
	DurationMinutes *int    `json:"durationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
}

// ScheduleInterval занятый интервал в расписании человека
type ScheduleInterval struct {
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
}

// ScheduleResponse ответ с занятыми интервалами на день
type ScheduleResponse struct {
	PersonID  int64              `json:"personId"`
	Date      string             `json:"date"`
	Intervals []ScheduleInterval `json:"intervals"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в проекцию
// client/worker/proc равные nil означают оборванную ссылку
func FromDomainBooking(b *domain.Booking, client, worker *domain.Person, proc *domain.Procedure) *BookingView {
	if b == nil {
		return nil
	}

	view := &BookingView{
		ID:          b.ID,
		ClientID:    b.ClientID,
		WorkerID:    b.WorkerID,
		ProcedureID: b.ProcedureID,
		StartsAt:    b.StartsAt.Format(time.RFC3339),
		EndsAt:      b.EndsAt.Format(time.RFC3339),
		Status:      string(b.Status),
		PaymentType: string(b.PaymentType),
		FinalPrice:  b.FinalPrice,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.PreviousStatus != nil {
		prev := string(*b.PreviousStatus)
		view.PreviousStatus = &prev
	}
	if client != nil {
		view.ClientName = &client.Name
	}
	if worker != nil {
		view.WorkerName = &worker.Name
	}
	if proc != nil {
		view.ProcedureName = &proc.Name
		view.DurationMinutes = &proc.DurationMinutes
	}

	return view
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
