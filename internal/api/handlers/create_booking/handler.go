package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты и времени, ожидается RFC 3339"
	msgClientNotFound     = "клиент не найден"
	msgWorkerNotFound     = "мастер не найден"
	msgNotAWorker         = "указанный исполнитель не является мастером"
	msgProcedureNotFound  = "процедура не найдена"
	msgInvalidWindow      = "некорректное временное окно"
	msgNotWorkday         = "салон не работает в выбранный день"
	msgOutsideHours       = "окно выходит за пределы рабочих часов"
	msgWorkerConflict     = "мастер занят в выбранное время"
	msgClientConflict     = "у клиента уже есть запись на это время"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrWorkerConflict):
			h.logger.Warn("POST /bookings - Worker conflict: worker_id=%d", req.WorkerID)
			handlers.RespondError(w, http.StatusConflict, msgWorkerConflict)

		case errors.Is(err, createBooking.ErrClientConflict):
			h.logger.Warn("POST /bookings - Client conflict: client_id=%d", req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgClientConflict)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrWorkerNotFound):
			h.logger.Warn("POST /bookings - Worker not found: worker_id=%d", req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, createBooking.ErrNotAWorker):
			h.logger.Warn("POST /bookings - Person is not a worker: worker_id=%d", req.WorkerID)
			handlers.RespondBadRequest(w, msgNotAWorker)

		case errors.Is(err, createBooking.ErrProcedureNotFound):
			h.logger.Warn("POST /bookings - Procedure not found: procedure_id=%d", req.ProcedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, createBooking.ErrInvalidWindow):
			h.logger.Warn("POST /bookings - Invalid window: client_id=%d, worker_id=%d", req.ClientID, req.WorkerID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createBooking.ErrNotWorkday):
			h.logger.Warn("POST /bookings - Not a workday: starts_at=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgNotWorkday)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: starts_at=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, worker_id=%d, error=%v",
				req.ClientID, req.WorkerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, worker_id=%d",
		result.ID, req.ClientID, req.WorkerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
