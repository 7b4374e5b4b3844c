package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListForPersonOnDay(ctx context.Context, personID int64, day time.Time, includeCancelled bool) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
}

// ProcedureRepository интерфейс репозитория процедур
type ProcedureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
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
