package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	if req.ClientID == req.WorkerID {
		return fmt.Errorf("%w: client and worker must be different people", ErrInvalidInput)
	}

	if req.ProcedureID <= 0 {
		return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return fmt.Errorf("%w: startsAt and endsAt are required", ErrInvalidInput)
	}

	if !domain.IsValidPaymentType(req.PaymentType) {
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, req.PaymentType)
	}

	if req.Status != nil {
		// Начальный статус только held или confirmed: выполненным или отменённым
		// бронирование не создаётся
		if *req.Status != domain.StatusHeld && *req.Status != domain.StatusConfirmed {
			return fmt.Errorf("%w: initial status must be held or confirmed", ErrInvalidInput)
		}
	}

	return nil
}

// validateWindow проверяет временное окно против операционного расписания салона
func validateWindow(req *Request, schedule domain.Schedule) error {
	if !req.EndsAt.After(req.StartsAt) {
		return ErrInvalidWindow
	}

	if !schedule.IsWorkday(req.StartsAt) {
		return ErrNotWorkday
	}

	if !schedule.WithinOperatingWindow(req.StartsAt, req.EndsAt) {
		return ErrOutsideOperatingHours
	}

	return nil
}
