package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Client клиент для работы с сервисом уведомлений (email, audit log)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет событие бронирования в сервис уведомлений.
// Fire-and-forget: ошибки логируются и не возвращаются вызывающему,
// повторные попытки на стороне планировщика не выполняются.
func (c *Client) Notify(ctx context.Context, event domain.BookingEvent) {
	payload := BookingEventPayload{
		EventID:     event.EventID,
		Type:        string(event.Type),
		BookingID:   event.Booking.ID,
		ClientID:    event.Booking.ClientID,
		WorkerID:    event.Booking.WorkerID,
		ProcedureID: event.Booking.ProcedureID,
		StartsAt:    event.Booking.StartsAt,
		EndsAt:      event.Booking.EndsAt,
		Status:      string(event.Booking.Status),
		FinalPrice:  event.Booking.FinalPrice,
		OccurredAt:  event.OccurredAt,
	}
	if payload.EventID == "" {
		payload.EventID = uuid.NewString()
	}

	if err := c.send(ctx, payload); err != nil {
		c.log.Warn("notifyservice: failed to deliver %s event for booking id=%d: %v",
			event.Type, event.Booking.ID, err)
		return
	}

	c.log.Info("notifyservice: delivered %s event for booking id=%d", event.Type, event.Booking.ID)
}

// Nop заглушка клиента для окружений без сервиса уведомлений
type Nop struct{}

func (Nop) Notify(ctx context.Context, event domain.BookingEvent) {}

func (c *Client) send(ctx context.Context, payload BookingEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications/booking-events", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	// Тело ответа не используется, вычитываем для переиспользования соединения
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	return nil
}
