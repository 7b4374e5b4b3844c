package inventory

import "errors"

var (
	// ErrProcedureNotFound возвращается, когда процедура не найдена
	ErrProcedureNotFound = errors.New("inventory: procedure not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inventory: internal error")
)
