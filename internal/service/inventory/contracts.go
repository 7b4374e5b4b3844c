package inventory

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ProcedureRepository интерфейс репозитория процедур
type ProcedureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
}

// MaterialRepository интерфейс репозитория материалов
type MaterialRepository interface {
	DecrementStock(ctx context.Context, materialID int64, qty float64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
