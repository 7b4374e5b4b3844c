package update_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на частичное обновление бронирования
// Изменение clientId и status через этот usecase не поддерживается:
// статус меняется только через transition_status
type Request struct {
	ID        int64       // ID бронирования
	ActorID   int64       // ID инициатора
	ActorRole domain.Role // Роль инициатора

	WorkerID    *int64              // Новый мастер (опционально)
	ProcedureID *int64              // Новая процедура (опционально)
	StartsAt    *time.Time          // Новое начало (опционально)
	EndsAt      *time.Time          // Новый конец (опционально)
	PaymentType *domain.PaymentType // Новый способ оплаты (опционально)
	FinalPrice  *float64            // Явная корректировка цены (опционально)
	Notes       *string             // Новые заметки (опционально)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID          int64
	ClientID    int64
	WorkerID    int64
	ProcedureID int64
	StartsAt    time.Time
	EndsAt      time.Time
	Status      string
	PaymentType string
	FinalPrice  float64
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
