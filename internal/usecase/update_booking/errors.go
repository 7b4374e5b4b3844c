package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на обновление
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrWorkerNotFound возвращается, когда новый мастер не найден
	ErrWorkerNotFound = errors.New("update_booking: worker not found")

	// ErrNotAWorker возвращается, когда указанный человек не является мастером
	ErrNotAWorker = errors.New("update_booking: person is not a worker")

	// ErrProcedureNotFound возвращается, когда новая процедура не найдена
	ErrProcedureNotFound = errors.New("update_booking: procedure not found")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("update_booking: invalid time window")

	// ErrNotWorkday возвращается, когда дата приходится на нерабочий день
	ErrNotWorkday = errors.New("update_booking: salon does not operate on this day")

	// ErrOutsideOperatingHours возвращается, когда окно выходит за часы работы
	ErrOutsideOperatingHours = errors.New("update_booking: window is outside operating hours")

	// ErrWorkerConflict возвращается, когда мастер занят в указанное время
	ErrWorkerConflict = errors.New("update_booking: worker is unavailable at this time")

	// ErrClientConflict возвращается, когда клиент занят в указанное время
	ErrClientConflict = errors.New("update_booking: client is unavailable at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
