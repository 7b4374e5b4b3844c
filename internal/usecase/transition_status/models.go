package transition_status

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на переход статуса
type Request struct {
	ID        int64                // ID бронирования
	NewStatus domain.BookingStatus // Целевой статус
	ActorID   int64                // ID инициатора
	ActorRole domain.Role          // Роль инициатора
}

// Response модель ответа с бронированием после перехода
type Response struct {
	ID             int64
	ClientID       int64
	WorkerID       int64
	ProcedureID    int64
	StartsAt       time.Time
	EndsAt         time.Time
	Status         string
	PreviousStatus *string
	PaymentType    string
	FinalPrice     float64
	UpdatedAt      time.Time
}
