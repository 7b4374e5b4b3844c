package worker_schedule

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	msgInvalidPersonID = "некорректный ID человека"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/persons/{personId}/schedule
// Query params: date (обязательно, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	personID, err := strconv.ParseInt(vars["personId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /persons/{id}/schedule - Invalid person ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPersonID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /persons/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.WorkerScheduleForDay(r.Context(), personID, date)
	if err != nil {
		h.logger.Error("GET /persons/{id}/schedule - Failed to get schedule: person_id=%d, error=%v", personID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /persons/{id}/schedule - Schedule retrieved successfully: person_id=%d, intervals=%d",
		personID, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
