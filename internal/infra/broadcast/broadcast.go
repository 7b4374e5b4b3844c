// Package broadcast рассылка live-обновлений подписчикам календаря через Redis pub/sub
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const ns = "salon:v1"

// ChannelBookingsChanged имя канала событий изменения бронирований
func ChannelBookingsChanged() string {
	return ns + ":bookings:changed"
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Publisher публикует события бронирований в Redis канал
type Publisher struct {
	rdb     *redis.Client
	channel string
	log     Logger
}

// NewPublisher создает новый publisher поверх подключённого Redis клиента
func NewPublisher(rdb *redis.Client, log Logger) *Publisher {
	return &Publisher{
		rdb:     rdb,
		channel: ChannelBookingsChanged(),
		log:     log,
	}
}

type bookingChangedMsg struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	BookingID int64  `json:"booking_id"`
	WorkerID  int64  `json:"worker_id"`
	ClientID  int64  `json:"client_id"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	Status    string `json:"status"`
	TsUnix    int64  `json:"ts_unix"`
}

// Broadcast публикует событие изменения бронирования
// Ошибки публикации логируются и не возвращаются вызывающему - рассылка best-effort
func (p *Publisher) Broadcast(ctx context.Context, eventType domain.EventType, booking *domain.Booking) {
	msg := bookingChangedMsg{
		EventID:   uuid.NewString(),
		Type:      string(eventType),
		BookingID: booking.ID,
		WorkerID:  booking.WorkerID,
		ClientID:  booking.ClientID,
		StartsAt:  booking.StartsAt.Format(time.RFC3339),
		EndsAt:    booking.EndsAt.Format(time.RFC3339),
		Status:    string(booking.Status),
		TsUnix:    time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	if err := p.rdb.Publish(ctx, p.channel, b).Err(); err != nil {
		p.log.Warn("broadcast: failed to publish %s for booking id=%d: %v", eventType, booking.ID, err)
	}
}

// Subscribe подписывается на события изменения бронирований
// Блокируется до отмены контекста
func (p *Publisher) Subscribe(ctx context.Context, handler func(ctx context.Context, bookingID int64)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev bookingChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil && ev.BookingID != 0 {
				handler(ctx, ev.BookingID)
			}
		}
	}
}

// Nop заглушка publisher для окружений без Redis
type Nop struct{}

func (Nop) Broadcast(ctx context.Context, eventType domain.EventType, booking *domain.Booking) {}

// Connect подключается к Redis и проверяет соединение
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, fmt.Errorf("broadcast: redis ping failed: %w", err)
	}

	return client, nil
}
