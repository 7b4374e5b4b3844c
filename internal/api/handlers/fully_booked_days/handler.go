package fully_booked_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	fullyBookedDays "github.com/m04kA/SMC-SalonService/internal/usecase/fully_booked_days"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается число от 1 до 12"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase FullyBookedDaysUseCase
	logger  Logger
}

func NewHandler(useCase FullyBookedDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/fully-booked-days
// Query params: year, month (обязательно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar/fully-booked-days - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar/fully-booked-days - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &fullyBookedDays.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, fullyBookedDays.ErrInvalidInput):
			h.logger.Warn("GET /calendar/fully-booked-days - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar/fully-booked-days - Failed to compute: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/fully-booked-days - Computed successfully: year=%d, month=%d, days=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FullyBookedDaysResponse{Days: result.Days})
}
