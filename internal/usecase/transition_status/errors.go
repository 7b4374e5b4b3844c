package transition_status

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_status: booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("transition_status: invalid status transition")

	// ErrForbidden возвращается, когда роль инициатора не допускает переход
	ErrForbidden = errors.New("transition_status: transition is not allowed for this role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_status: internal error")
)

// InvalidTransitionError недопустимый переход с указанием исходного и
// целевого статусов; совместим с errors.Is(err, ErrInvalidTransition)
type InvalidTransitionError struct {
	From domain.BookingStatus
	To   domain.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition_status: cannot move booking from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
