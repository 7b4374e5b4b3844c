package transition_status

import (
	"time"

	transitionStatus "github.com/m04kA/SMC-SalonService/internal/usecase/transition_status"
)

// TransitionStatusRequest HTTP request model
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	ClientID       int64   `json:"clientId"`
	WorkerID       int64   `json:"workerId"`
	ProcedureID    int64   `json:"procedureId"`
	StartsAt       string  `json:"startsAt"`
	EndsAt         string  `json:"endsAt"`
	Status         string  `json:"status"`
	PreviousStatus *string `json:"previousStatus,omitempty"`
	PaymentType    string  `json:"paymentType"`
	FinalPrice     float64 `json:"finalPrice"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionStatus.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ClientID:       resp.ClientID,
		WorkerID:       resp.WorkerID,
		ProcedureID:    resp.ProcedureID,
		StartsAt:       resp.StartsAt.Format(time.RFC3339),
		EndsAt:         resp.EndsAt.Format(time.RFC3339),
		Status:         resp.Status,
		PreviousStatus: resp.PreviousStatus,
		PaymentType:    resp.PaymentType,
		FinalPrice:     resp.FinalPrice,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
