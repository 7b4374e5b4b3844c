package transition_status

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, previousStatus *domain.BookingStatus) error
}

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	UpdateVisitsAndTier(ctx context.Context, id int64, visitsCount int, tier *domain.LoyaltyTier) error
}

// LoyaltyService интерфейс пересчёта уровня лояльности
type LoyaltyService interface {
	ReconcileTier(ctx context.Context, clientID int64) error
}

// InventoryService интерфейс списания материалов
type InventoryService interface {
	Deplete(ctx context.Context, procedureID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений (fire-and-forget)
type Notifier interface {
	Notify(ctx context.Context, event domain.BookingEvent)
}

// Broadcaster интерфейс live-рассылки подписчикам календаря
type Broadcaster interface {
	Broadcast(ctx context.Context, eventType domain.EventType, booking *domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
