package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	CountOverlapping(ctx context.Context, personID int64, startsAt, endsAt time.Time, excludeID *int64) (int, error)
}

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
}

// ProcedureRepository интерфейс репозитория процедур
type ProcedureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
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
