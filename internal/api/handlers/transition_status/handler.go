package transition_status

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	transitionStatus "github.com/m04kA/SMC-SalonService/internal/usecase/transition_status"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "переход недоступен для вашей роли"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgInvalidInput       = "некорректные данные запроса"
)

// invalidTransitionMessage называет в сообщении исходный и целевой статусы,
// когда они известны
func invalidTransitionMessage(err error) string {
	var invErr *transitionStatus.InvalidTransitionError
	if errors.As(err, &invErr) {
		return fmt.Sprintf("%s: из %s в %s", msgInvalidTransition, invErr.From, invErr.To)
	}
	return msgInvalidTransition
}

type Handler struct {
	useCase TransitionStatusUseCase
	logger  Logger
}

func NewHandler(useCase TransitionStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actorRole, _ := middleware.GetUserRole(r.Context())

	var req TransitionStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionStatus.Request{
		ID:        bookingID,
		NewStatus: domain.BookingStatus(req.Status),
		ActorID:   actorID,
		ActorRole: actorRole,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionStatus.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{id}/status - Forbidden: booking_id=%d, actor_id=%d", bookingID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, status=%s", bookingID, req.Status)
			handlers.RespondBadRequest(w, invalidTransitionMessage(err))

		case errors.Is(err, transitionStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to transition: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/status - Status changed: booking_id=%d, status=%s, actor_id=%d",
		bookingID, result.Status, actorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
