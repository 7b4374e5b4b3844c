package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID    int64   `json:"clientId"`
	WorkerID    int64   `json:"workerId"`
	ProcedureID int64   `json:"procedureId"`
	StartsAt    string  `json:"startsAt"` // RFC 3339
	EndsAt      string  `json:"endsAt"`   // RFC 3339
	PaymentType string  `json:"paymentType"`
	Status      *string `json:"status,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	WorkerID    int64   `json:"workerId"`
	ProcedureID int64   `json:"procedureId"`
	StartsAt    string  `json:"startsAt"`
	EndsAt      string  `json:"endsAt"`
	Status      string  `json:"status"`
	PaymentType string  `json:"paymentType"`
	FinalPrice  float64 `json:"finalPrice"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		ClientID:    r.ClientID,
		WorkerID:    r.WorkerID,
		ProcedureID: r.ProcedureID,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		PaymentType: domain.PaymentType(r.PaymentType),
		Notes:       r.Notes,
	}
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		WorkerID:    resp.WorkerID,
		ProcedureID: resp.ProcedureID,
		StartsAt:    resp.StartsAt.Format(time.RFC3339),
		EndsAt:      resp.EndsAt.Format(time.RFC3339),
		Status:      resp.Status,
		PaymentType: resp.PaymentType,
		FinalPrice:  resp.FinalPrice,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
