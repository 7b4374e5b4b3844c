package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	personRepo    PersonRepository
	procedureRepo ProcedureRepository
	txManager     TransactionManager
	notifier      Notifier
	broadcaster   Broadcaster
	schedule      domain.Schedule
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	personRepo PersonRepository,
	procedureRepo ProcedureRepository,
	txManager TransactionManager,
	notifier Notifier,
	broadcaster Broadcaster,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		personRepo:    personRepo,
		procedureRepo: procedureRepo,
		txManager:     txManager,
		notifier:      notifier,
		broadcaster:   broadcaster,
		schedule:      schedule,
		logger:        logger,
	}
}

// Execute выполняет use case обновления бронирования
// Пересечения перепроверяются только если меняется время или мастер,
// в одной сериализуемой транзакции с записью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, actor=%d role=%s", req.ID, req.ActorID, req.ActorRole)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Клиент может обновлять только собственные бронирования
		if req.ActorRole == domain.RoleClient && booking.ClientID != req.ActorID {
			uc.logger.Warn("UpdateBooking: access denied for actor=%d to booking id=%d", req.ActorID, req.ID)
			return ErrAccessDenied
		}

		timeOrWorkerChanged := uc.applyChanges(txCtx, booking, req)

		if !booking.EndsAt.After(booking.StartsAt) {
			return ErrInvalidWindow
		}
		if !uc.schedule.IsWorkday(booking.StartsAt) {
			return ErrNotWorkday
		}
		if !uc.schedule.WithinOperatingWindow(booking.StartsAt, booking.EndsAt) {
			return ErrOutsideOperatingHours
		}

		// Новый мастер должен существовать и иметь роль worker
		if req.WorkerID != nil {
			worker, err := uc.personRepo.GetByID(txCtx, *req.WorkerID)
			if err != nil {
				if errors.Is(err, personRepo.ErrPersonNotFound) {
					return ErrWorkerNotFound
				}
				return fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
			}
			if !worker.IsWorker() {
				return ErrNotAWorker
			}
		}

		// Новая процедура должна существовать
		if req.ProcedureID != nil {
			if _, err := uc.procedureRepo.GetByID(txCtx, *req.ProcedureID); err != nil {
				if errors.Is(err, procedureRepo.ErrProcedureNotFound) {
					return ErrProcedureNotFound
				}
				return fmt.Errorf("%w: failed to get procedure: %v", ErrInternal, err)
			}
		}

		// Перепроверяем пересечения, только если поменялось время или мастер
		// Собственное бронирование исключается из проверки
		if timeOrWorkerChanged {
			workerOverlaps, err := uc.bookingRepo.CountOverlapping(txCtx, booking.WorkerID, booking.StartsAt, booking.EndsAt, &booking.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to check worker overlaps: %v", ErrInternal, err)
			}
			if workerOverlaps > 0 {
				uc.logger.Warn("UpdateBooking: worker id=%d has %d overlapping bookings", booking.WorkerID, workerOverlaps)
				return ErrWorkerConflict
			}

			clientOverlaps, err := uc.bookingRepo.CountOverlapping(txCtx, booking.ClientID, booking.StartsAt, booking.EndsAt, &booking.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to check client overlaps: %v", ErrInternal, err)
			}
			if clientOverlaps > 0 {
				uc.logger.Warn("UpdateBooking: client id=%d has %d overlapping bookings", booking.ClientID, clientOverlaps)
				return ErrClientConflict
			}
		}

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	uc.emitEvent(domain.EventUpdated, result)

	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		WorkerID:    result.WorkerID,
		ProcedureID: result.ProcedureID,
		StartsAt:    result.StartsAt,
		EndsAt:      result.EndsAt,
		Status:      string(result.Status),
		PaymentType: string(result.PaymentType),
		FinalPrice:  result.FinalPrice,
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// applyChanges накладывает частичные изменения на бронирование
// Возвращает true, если поменялось время или мастер - тогда нужна
// повторная проверка пересечений
func (uc *UseCase) applyChanges(_ context.Context, booking *domain.Booking, req *Request) bool {
	changed := false

	if req.WorkerID != nil && *req.WorkerID != booking.WorkerID {
		booking.WorkerID = *req.WorkerID
		changed = true
	}
	if req.StartsAt != nil && !req.StartsAt.Equal(booking.StartsAt) {
		booking.StartsAt = *req.StartsAt
		changed = true
	}
	if req.EndsAt != nil && !req.EndsAt.Equal(booking.EndsAt) {
		booking.EndsAt = *req.EndsAt
		changed = true
	}
	if req.ProcedureID != nil {
		booking.ProcedureID = *req.ProcedureID
	}
	if req.PaymentType != nil {
		booking.PaymentType = *req.PaymentType
	}
	if req.FinalPrice != nil {
		booking.FinalPrice = *req.FinalPrice
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	return changed
}

func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if req.PaymentType != nil && !domain.IsValidPaymentType(*req.PaymentType) {
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, *req.PaymentType)
	}
	if req.FinalPrice != nil && *req.FinalPrice < 0 {
		return fmt.Errorf("%w: finalPrice must not be negative", ErrInvalidInput)
	}
	if req.WorkerID != nil && *req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if req.ProcedureID != nil && *req.ProcedureID <= 0 {
		return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}
	return nil
}

// emitEvent рассылает событие обновления внешним подписчикам (fire-and-forget)
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
