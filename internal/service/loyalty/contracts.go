package loyalty

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	UpdateVisitsAndTier(ctx context.Context, id int64, visitsCount int, tier *domain.LoyaltyTier) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
