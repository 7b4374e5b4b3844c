package loyalty

import "errors"

var (
	// ErrPersonNotFound возвращается, когда клиент не найден
	ErrPersonNotFound = errors.New("loyalty: person not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("loyalty: internal error")
)
