package fully_booked_days

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case расчёта полностью занятых дней месяца
// Параллельные запросы на один и тот же месяц схлопываются через singleflight
type UseCase struct {
	bookingRepo   BookingRepository
	personRepo    PersonRepository
	procedureRepo ProcedureRepository
	schedule      domain.Schedule
	logger        Logger

	group singleflight.Group
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	personRepo PersonRepository,
	procedureRepo ProcedureRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		personRepo:    personRepo,
		procedureRepo: procedureRepo,
		schedule:      schedule,
		logger:        logger,
	}
}

// Execute возвращает даты месяца, в которые ни один мастер не может принять
// даже самую короткую процедуру. День считается полностью занятым, когда у
// КАЖДОГО мастера остаток рабочего времени меньше минимальной длительности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Year < 1 || req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: year=%d month=%d", ErrInvalidInput, req.Year, req.Month)
	}

	key := fmt.Sprintf("%04d-%02d", req.Year, req.Month)

	// Расчёт отвязан от контекста первого вызвавшего: его отмена не должна
	// ронять остальных участников схлопнутого запроса
	v, err, shared := uc.group.Do(key, func() (interface{}, error) {
		return uc.computeMonth(context.WithoutCancel(ctx), req.Year, req.Month)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		uc.logger.Info("FullyBookedDays: result for %s shared between concurrent callers", key)
	}

	return &Response{Days: v.([]string)}, nil
}

func (uc *UseCase) computeMonth(ctx context.Context, year, month int) ([]string, error) {
	workers, err := uc.personRepo.ListByRole(ctx, domain.RoleWorker)
	if err != nil {
		uc.logger.Error("FullyBookedDays: failed to list workers: %v", err)
		return nil, fmt.Errorf("%w: failed to list workers: %v", ErrInternal, err)
	}
	// Без мастеров и без процедур занятость не определена - месяц свободен
	if len(workers) == 0 {
		uc.logger.Warn("FullyBookedDays: no workers registered, month %04d-%02d reported free", year, month)
		return []string{}, nil
	}

	minDuration, ok, err := uc.procedureRepo.MinDurationMinutes(ctx)
	if err != nil {
		uc.logger.Error("FullyBookedDays: failed to get min procedure duration: %v", err)
		return nil, fmt.Errorf("%w: failed to get min procedure duration: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("FullyBookedDays: no procedures registered, month %04d-%02d reported free", year, month)
		return []string{}, nil
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, err := uc.bookingRepo.ListInRange(ctx, monthStart, monthEnd)
	if err != nil {
		uc.logger.Error("FullyBookedDays: failed to list bookings for %04d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// Занятые минуты по дню и мастеру, отменённые записи не учитываются
	booked := make(map[int]map[int64]int)
	for _, b := range bookings {
		day := b.StartsAt.UTC().Day()
		if booked[day] == nil {
			booked[day] = make(map[int64]int)
		}
		booked[day][b.WorkerID] += int(b.EndsAt.Sub(b.StartsAt).Minutes())
	}

	capacity := uc.schedule.CapacityMinutes()

	days := []string{}
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		if !uc.schedule.IsWorkday(d) {
			continue
		}
		if uc.dayFullyBooked(booked[d.Day()], workers, capacity, minDuration) {
			days = append(days, d.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("FullyBookedDays: %04d-%02d has %d fully booked days (workers=%d, minDuration=%dmin)",
		year, month, len(days), len(workers), minDuration)

	return days, nil
}

// dayFullyBooked проверяет, что ни у одного мастера не осталось окна
// хотя бы под минимальную процедуру
func (uc *UseCase) dayFullyBooked(bookedByWorker map[int64]int, workers []*domain.Person, capacity, minDuration int) bool {
	for _, w := range workers {
		remaining := capacity - bookedByWorker[w.ID]
		if remaining >= minDuration {
			return false
		}
	}
	return true
}
