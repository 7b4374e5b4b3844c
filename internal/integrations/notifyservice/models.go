package notifyservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingEventPayload тело уведомления о событии бронирования
type BookingEventPayload struct {
	EventID     string    `json:"eventId"`
	Type        string    `json:"type"` // created | updated | deleted | status_changed
	BookingID   int64     `json:"bookingId"`
	ClientID    int64     `json:"clientId"`
	WorkerID    int64     `json:"workerId"`
	ProcedureID int64     `json:"procedureId"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status"`
	FinalPrice  float64   `json:"finalPrice"`
	OccurredAt  time.Time `json:"occurredAt"`
}
