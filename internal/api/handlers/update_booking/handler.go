package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	updateBooking "github.com/m04kA/SMC-SalonService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты и времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
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
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actorRole, _ := middleware.GetUserRole(r.Context())

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, actorID, actorRole)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, actor_id=%d", bookingID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrWorkerConflict):
			h.logger.Warn("PATCH /bookings/{id} - Worker conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgWorkerConflict)

		case errors.Is(err, updateBooking.ErrClientConflict):
			h.logger.Warn("PATCH /bookings/{id} - Client conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgClientConflict)

		case errors.Is(err, updateBooking.ErrWorkerNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Worker not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, updateBooking.ErrNotAWorker):
			h.logger.Warn("PATCH /bookings/{id} - Person is not a worker: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotAWorker)

		case errors.Is(err, updateBooking.ErrProcedureNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Procedure not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, updateBooking.ErrInvalidWindow):
			h.logger.Warn("PATCH /bookings/{id} - Invalid window: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, updateBooking.ErrNotWorkday):
			h.logger.Warn("PATCH /bookings/{id} - Not a workday: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotWorkday)

		case errors.Is(err, updateBooking.ErrOutsideOperatingHours):
			h.logger.Warn("PATCH /bookings/{id} - Outside operating hours: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, actor_id=%d", bookingID, actorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
