package transition_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
)

// UseCase use case перехода статуса бронирования
// Реализует машину состояний held -> confirmed -> fulfilled с отменой
// из любого статуса и восстановлением cancelled -> previousStatus
type UseCase struct {
	bookingRepo  BookingRepository
	personRepo   PersonRepository
	loyaltySvc   LoyaltyService
	inventorySvc InventoryService
	txManager    TransactionManager
	notifier     Notifier
	broadcaster  Broadcaster
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	personRepo PersonRepository,
	loyaltySvc LoyaltyService,
	inventorySvc InventoryService,
	txManager TransactionManager,
	notifier Notifier,
	broadcaster Broadcaster,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		personRepo:   personRepo,
		loyaltySvc:   loyaltySvc,
		inventorySvc: inventorySvc,
		txManager:    txManager,
		notifier:     notifier,
		broadcaster:  broadcaster,
		logger:       logger,
	}
}

// Execute выполняет переход статуса
// Авторитетная запись статуса выполняется в сериализуемой транзакции;
// побочные эффекты (визиты, лояльность, списание) применяются после коммита,
// каждый независимо: сбой эффекта логируется и не откатывает переход
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionStatus: booking=%d -> %s, actor=%d role=%s",
		req.ID, req.NewStatus, req.ActorID, req.ActorRole)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if !domain.IsValidStatus(req.NewStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.NewStatus)
	}

	var (
		booking   *domain.Booking
		oldStatus domain.BookingStatus
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionStatus: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionStatus: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Клиенту доступна единственная операция: отмена собственной
		// ещё не подтверждённой записи
		if req.ActorRole == domain.RoleClient {
			if b.ClientID != req.ActorID {
				uc.logger.Warn("TransitionStatus: actor=%d is not the client of booking id=%d", req.ActorID, req.ID)
				return ErrForbidden
			}
			if b.Status != domain.StatusHeld || req.NewStatus != domain.StatusCancelled {
				uc.logger.Warn("TransitionStatus: client may only cancel a held booking (got %s -> %s)",
					b.Status, req.NewStatus)
				return ErrForbidden
			}
		}

		if !b.CanTransitionTo(req.NewStatus) {
			uc.logger.Warn("TransitionStatus: illegal transition %s -> %s for booking id=%d",
				b.Status, req.NewStatus, req.ID)
			return &InvalidTransitionError{From: b.Status, To: req.NewStatus}
		}

		oldStatus = b.Status

		// При отмене снимаем снимок исходящего статуса для восстановления,
		// при любом другом переходе снимок очищается
		var newPrev *domain.BookingStatus
		if req.NewStatus == domain.StatusCancelled {
			prev := b.Status
			newPrev = &prev
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.ID, req.NewStatus, newPrev); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionStatus: failed to update status for booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		b.Status = req.NewStatus
		b.PreviousStatus = newPrev
		booking = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionStatus: booking id=%d moved %s -> %s", req.ID, oldStatus, booking.Status)

	// Побочные эффекты после коммита статуса
	uc.applySideEffects(ctx, booking, oldStatus)

	uc.emitEvent(domain.EventStatusChanged, booking)

	resp := &Response{
		ID:          booking.ID,
		ClientID:    booking.ClientID,
		WorkerID:    booking.WorkerID,
		ProcedureID: booking.ProcedureID,
		StartsAt:    booking.StartsAt,
		EndsAt:      booking.EndsAt,
		Status:      string(booking.Status),
		PaymentType: string(booking.PaymentType),
		FinalPrice:  booking.FinalPrice,
		UpdatedAt:   booking.UpdatedAt,
	}
	if booking.PreviousStatus != nil {
		prev := string(*booking.PreviousStatus)
		resp.PreviousStatus = &prev
	}

	return resp, nil
}

// applySideEffects применяет эффекты перехода ровно один раз
// Каждый эффект best-effort: сбой логируется и не влияет на остальные
func (uc *UseCase) applySideEffects(ctx context.Context, booking *domain.Booking, oldStatus domain.BookingStatus) {
	enteredFulfilled := booking.Status == domain.StatusFulfilled && oldStatus != domain.StatusFulfilled
	leftFulfilled := booking.Status == domain.StatusCancelled && oldStatus == domain.StatusFulfilled

	switch {
	case enteredFulfilled:
		// Визит состоялся: счётчик визитов, уровень лояльности, списание материалов
		uc.adjustVisits(ctx, booking.ClientID, +1)

		if err := uc.loyaltySvc.ReconcileTier(ctx, booking.ClientID); err != nil {
			uc.logger.Warn("TransitionStatus: tier reconciliation failed for client=%d: %v", booking.ClientID, err)
		}

		if err := uc.inventorySvc.Deplete(ctx, booking.ProcedureID); err != nil {
			uc.logger.Warn("TransitionStatus: inventory depletion failed for procedure=%d: %v", booking.ProcedureID, err)
		}

	case leftFulfilled:
		// Отмена выполненного визита: счётчик вниз (не ниже нуля), пересчёт уровня.
		// Материалы обратно не приходуются - они физически израсходованы.
		uc.adjustVisits(ctx, booking.ClientID, -1)

		if err := uc.loyaltySvc.ReconcileTier(ctx, booking.ClientID); err != nil {
			uc.logger.Warn("TransitionStatus: tier reconciliation failed for client=%d: %v", booking.ClientID, err)
		}
	}
}

// adjustVisits изменяет счётчик визитов клиента на delta, не опускаясь ниже нуля
func (uc *UseCase) adjustVisits(ctx context.Context, clientID int64, delta int) {
	client, err := uc.personRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			uc.logger.Warn("TransitionStatus: client id=%d not found, skipping visits adjustment", clientID)
			return
		}
		uc.logger.Warn("TransitionStatus: failed to get client id=%d: %v", clientID, err)
		return
	}

	visits := client.VisitsCount + delta
	if visits < 0 {
		visits = 0
	}

	if err := uc.personRepo.UpdateVisitsAndTier(ctx, clientID, visits, client.LoyaltyTier); err != nil {
		uc.logger.Warn("TransitionStatus: failed to update visits for client id=%d: %v", clientID, err)
		return
	}

	uc.logger.Info("TransitionStatus: client id=%d visits %d -> %d", clientID, client.VisitsCount, visits)
}

// emitEvent рассылает событие перехода внешним подписчикам (fire-and-forget)
func (uc *UseCase) emitEvent(eventType domain.EventType, booking *domain.Booking) {
	event := domain.BookingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Booking:    booking,
		OccurredAt: time.Now(),
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		uc.notifier.Notify(sendCtx, event)
		uc.broadcaster.Broadcast(sendCtx, eventType, booking)
	}()
}
