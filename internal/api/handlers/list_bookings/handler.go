package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidStatus = "некорректный статус бронирования"
	msgInvalidSort   = "некорректное поле сортировки"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: date, startDate, endDate, clientName, workerName, status, sortBy (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("date"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("clientName"),
		query.Get("workerName"),
		query.Get("status"),
		query.Get("sortBy"),
	)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status filter: %s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, models.ErrInvalidSort):
			h.logger.Warn("GET /bookings - Invalid sort field: %s", query.Get("sortBy"))
			handlers.RespondBadRequest(w, msgInvalidSort)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
