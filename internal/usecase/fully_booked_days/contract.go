package fully_booked_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Person, error)
}

// ProcedureRepository интерфейс репозитория процедур
type ProcedureRepository interface {
	MinDurationMinutes(ctx context.Context) (int, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
