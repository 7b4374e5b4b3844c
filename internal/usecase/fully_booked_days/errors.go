package fully_booked_days

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных годе или месяце
	ErrInvalidInput = errors.New("fully_booked_days: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("fully_booked_days: internal error")
)
