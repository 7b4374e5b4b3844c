package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	personRepo    PersonRepository
	procedureRepo ProcedureRepository
	txManager     TransactionManager
	notifier      Notifier
	broadcaster   Broadcaster
	schedule      domain.Schedule
	discounts     domain.DiscountTable
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
	discounts domain.DiscountTable,
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
		discounts:     discounts,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции -
// два конкурентных запроса на одно окно не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, worker=%d, procedure=%d, window=%s..%s",
		req.ClientID, req.WorkerID, req.ProcedureID,
		req.StartsAt.Format(time.RFC3339), req.EndsAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация окна против расписания салона - до любых обращений к хранилищу
	if err := validateWindow(req, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: window validation failed: %v", err)
		return nil, err
	}

	// 3. Резолвим клиента
	client, err := uc.personRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Резолвим мастера и проверяем роль
	worker, err := uc.personRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			uc.logger.Warn("CreateBooking: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}
	if !worker.IsWorker() {
		uc.logger.Warn("CreateBooking: person id=%d has role %s, not worker", req.WorkerID, worker.Role)
		return nil, ErrNotAWorker
	}

	// 5. Резолвим процедуру
	proc, err := uc.procedureRepo.GetByID(ctx, req.ProcedureID)
	if err != nil {
		if errors.Is(err, procedureRepo.ErrProcedureNotFound) {
			uc.logger.Warn("CreateBooking: procedure id=%d not found", req.ProcedureID)
			return nil, ErrProcedureNotFound
		}
		uc.logger.Error("CreateBooking: failed to get procedure id=%d: %v", req.ProcedureID, err)
		return nil, fmt.Errorf("%w: failed to get procedure: %v", ErrInternal, err)
	}

	// 6. Фиксируем цену по уровню лояльности клиента на момент создания
	// Последующие изменения уровня на цену не влияют
	finalPrice := domain.FinalPrice(proc.Price, client.LoyaltyTier, uc.discounts)

	status := domain.StatusHeld
	if req.Status != nil {
		status = *req.Status
	}

	var result *domain.Booking

	// 7. Проверка пересечений + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Мастер не должен быть занят (как мастер или как клиент)
		workerOverlaps, err := uc.bookingRepo.CountOverlapping(txCtx, req.WorkerID, req.StartsAt, req.EndsAt, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check worker overlaps: %v", err)
			return fmt.Errorf("%w: failed to check worker overlaps: %v", ErrInternal, err)
		}
		if workerOverlaps > 0 {
			uc.logger.Warn("CreateBooking: worker id=%d has %d overlapping bookings", req.WorkerID, workerOverlaps)
			return ErrWorkerConflict
		}

		// 7.2. Клиент не должен быть занят
		clientOverlaps, err := uc.bookingRepo.CountOverlapping(txCtx, req.ClientID, req.StartsAt, req.EndsAt, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check client overlaps: %v", err)
			return fmt.Errorf("%w: failed to check client overlaps: %v", ErrInternal, err)
		}
		if clientOverlaps > 0 {
			uc.logger.Warn("CreateBooking: client id=%d has %d overlapping bookings", req.ClientID, clientOverlaps)
			return ErrClientConflict
		}

		// 7.3. Сохраняем бронирование
		booking := &domain.Booking{
			ClientID:    req.ClientID,
			WorkerID:    req.WorkerID,
			ProcedureID: req.ProcedureID,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
			Status:      status,
			PaymentType: req.PaymentType,
			FinalPrice:  finalPrice,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.FinalPrice)

	uc.emitEvent(domain.EventCreated, result)

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

// emitEvent рассылает событие создания внешним подписчикам (fire-and-forget)
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
