package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID    int64                 // ID клиента
	WorkerID    int64                 // ID мастера
	ProcedureID int64                 // ID процедуры
	StartsAt    time.Time             // Начало окна
	EndsAt      time.Time             // Конец окна
	PaymentType domain.PaymentType    // Способ оплаты
	Status      *domain.BookingStatus // Начальный статус (опционально, по умолчанию held)
	Notes       *string               // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	ClientID    int64
	WorkerID    int64
	ProcedureID int64
	StartsAt    time.Time
	EndsAt      time.Time
	Status      string
	PaymentType string
	FinalPrice  float64 // Зафиксированная цена со скидкой по уровню лояльности
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
