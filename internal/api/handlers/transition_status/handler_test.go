package transition_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	transitionStatus "github.com/m04kA/SMC-SalonService/internal/usecase/transition_status"
)

type fakeUseCase struct {
	err error

	gotReq *transitionStatus.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *transitionStatus.Request) (*transitionStatus.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &transitionStatus.Response{
		ID:        req.ID,
		Status:    string(req.NewStatus),
		UpdatedAt: time.Now(),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, bookingID, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", strings.NewReader(body))
	if withUser {
		req.Header.Set("X-User-ID", "100")
		req.Header.Set("X-User-Role", "admin")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, "7", `{"status":"confirmed"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.gotReq.ID)
	assert.Equal(t, int64(100), uc.gotReq.ActorID)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "abc", `{"status":"confirmed"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUserID(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "7", `{"status":"confirmed"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidTransitionMapsToBadRequest(t *testing.T) {
	uc := &fakeUseCase{err: &transitionStatus.InvalidTransitionError{
		From: domain.StatusHeld,
		To:   domain.StatusFulfilled,
	}}

	rec := doRequest(t, uc, "7", `{"status":"fulfilled"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Сообщение называет исходный и целевой статусы
	assert.Contains(t, rec.Body.String(), "held")
	assert.Contains(t, rec.Body.String(), "fulfilled")
}

func TestHandle_InvalidTransitionWithoutStatusesFallsBackToStaticMessage(t *testing.T) {
	uc := &fakeUseCase{err: transitionStatus.ErrInvalidTransition}

	rec := doRequest(t, uc, "7", `{"status":"fulfilled"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "недопустимый переход статуса")
}

func TestHandle_ForbiddenMapsTo403(t *testing.T) {
	uc := &fakeUseCase{err: transitionStatus.ErrForbidden}

	rec := doRequest(t, uc, "7", `{"status":"cancelled"}`, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_NotFoundMapsTo404(t *testing.T) {
	uc := &fakeUseCase{err: transitionStatus.ErrBookingNotFound}

	rec := doRequest(t, uc, "7", `{"status":"confirmed"}`, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
