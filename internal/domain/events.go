package domain

import "time"

// EventType тип события изменения бронирования
type EventType string

const (
	EventCreated       EventType = "created"
	EventUpdated       EventType = "updated"
	EventDeleted       EventType = "deleted"
	EventStatusChanged EventType = "status_changed"
)

// BookingEvent событие изменения бронирования для внешних подписчиков
// Рассылается в notification dispatcher и live-update broadcaster
type BookingEvent struct {
	EventID    string
	Type       EventType
	Booking    *Booking
	OccurredAt time.Time
}
