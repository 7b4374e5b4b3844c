package fully_booked_days

import (
	"context"

	fullyBookedDays "github.com/m04kA/SMC-SalonService/internal/usecase/fully_booked_days"
)

type FullyBookedDaysUseCase interface {
	Execute(ctx context.Context, req *fullyBookedDays.Request) (*fullyBookedDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
