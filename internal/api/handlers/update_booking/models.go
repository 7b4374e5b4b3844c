package update_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	updateBooking "github.com/m04kA/SMC-SalonService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model, все поля опциональны
type UpdateBookingRequest struct {
	WorkerID    *int64   `json:"workerId,omitempty"`
	ProcedureID *int64   `json:"procedureId,omitempty"`
	StartsAt    *string  `json:"startsAt,omitempty"` // RFC 3339
	EndsAt      *string  `json:"endsAt,omitempty"`   // RFC 3339
	PaymentType *string  `json:"paymentType,omitempty"`
	FinalPrice  *float64 `json:"finalPrice,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
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
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, actorID int64, actorRole domain.Role) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ID:          bookingID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		WorkerID:    r.WorkerID,
		ProcedureID: r.ProcedureID,
		FinalPrice:  r.FinalPrice,
		Notes:       r.Notes,
	}

	if r.StartsAt != nil {
		startsAt, err := time.Parse(time.RFC3339, *r.StartsAt)
		if err != nil {
			return nil, err
		}
		req.StartsAt = &startsAt
	}
	if r.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *r.EndsAt)
		if err != nil {
			return nil, err
		}
		req.EndsAt = &endsAt
	}
	if r.PaymentType != nil {
		payment := domain.PaymentType(*r.PaymentType)
		req.PaymentType = &payment
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
