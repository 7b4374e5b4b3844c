package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("create_booking: worker not found")

	// ErrNotAWorker возвращается, когда указанный человек не является мастером
	ErrNotAWorker = errors.New("create_booking: person is not a worker")

	// ErrProcedureNotFound возвращается, когда процедура не найдена
	ErrProcedureNotFound = errors.New("create_booking: procedure not found")

	// ErrInvalidWindow возвращается при некорректном временном окне (конец не позже начала)
	ErrInvalidWindow = errors.New("create_booking: invalid time window")

	// ErrNotWorkday возвращается, когда дата приходится на нерабочий день
	ErrNotWorkday = errors.New("create_booking: salon does not operate on this day")

	// ErrOutsideOperatingHours возвращается, когда окно выходит за часы работы
	ErrOutsideOperatingHours = errors.New("create_booking: window is outside operating hours")

	// ErrWorkerConflict возвращается, когда мастер занят в указанное время
	ErrWorkerConflict = errors.New("create_booking: worker is unavailable at this time")

	// ErrClientConflict возвращается, когда клиент занят в указанное время
	ErrClientConflict = errors.New("create_booking: client is unavailable at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
