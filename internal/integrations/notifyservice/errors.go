package notifyservice

import "errors"

var (
	// ErrRequestFailed возвращается при сетевой ошибке или не-2xx ответе
	ErrRequestFailed = errors.New("notifyservice: request failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice: internal error")
)
