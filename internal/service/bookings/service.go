package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований (проекции, расписания)
type Service struct {
	bookingRepo   BookingRepository
	personRepo    PersonRepository
	procedureRepo ProcedureRepository
	notifier      Notifier
	broadcaster   Broadcaster
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	personRepo PersonRepository,
	procedureRepo ProcedureRepository,
	notifier Notifier,
	broadcaster Broadcaster,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		personRepo:    personRepo,
		procedureRepo: procedureRepo,
		notifier:      notifier,
		broadcaster:   broadcaster,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственные бронирования
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64, actorRole domain.Role) (*models.BookingView, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d role=%s", id, actorID, actorRole)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if actorRole == domain.RoleClient && booking.ClientID != actorID {
		s.logger.Warn("GetByID: access denied for actor=%d to booking id=%d", actorID, id)
		return nil, ErrAccessDenied
	}

	return s.enrich(ctx, booking, newRefCache()), nil
}

// List получает бронирования с фильтрацией и сортировкой
// Фильтры по именам и сортировки по цене/именам/длительности применяются
// после резолва ссылок - эти поля не хранятся в записи бронирования
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	sortBy, err := req.SortField()
	if err != nil {
		s.logger.Warn("List: invalid sort field: %v", err)
		return nil, fmt.Errorf("%w: invalid sort field", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	cache := newRefCache()
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := s.enrich(ctx, b, cache)

		// Фильтры по именам применяются к резолвнутым значениям
		if filter.ClientName != nil && !nameContains(view.ClientName, *filter.ClientName) {
			continue
		}
		if filter.WorkerName != nil && !nameContains(view.WorkerName, *filter.WorkerName) {
			continue
		}

		views = append(views, *view)
	}

	sortViews(views, sortBy)

	s.logger.Info("List: fetched %d bookings (sort=%s)", len(views), sortBy)
	return &models.BookingListResponse{Bookings: views}, nil
}

// WorkerScheduleForDay возвращает занятые интервалы человека на день
// Человек занят и как мастер, и как клиент; отменённые не учитываются
func (s *Service) WorkerScheduleForDay(ctx context.Context, personID int64, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("WorkerScheduleForDay: person=%d date=%s", personID, date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListForPersonOnDay(ctx, personID, date, false)
	if err != nil {
		s.logger.Error("WorkerScheduleForDay: repository error for person=%d: %v", personID, err)
		return nil, fmt.Errorf("%w: WorkerScheduleForDay - repository error: %v", ErrInternal, err)
	}

	intervals := make([]models.ScheduleInterval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, models.ScheduleInterval{
			StartsAt: b.StartsAt.Format(time.RFC3339),
			EndsAt:   b.EndsAt.Format(time.RFC3339),
		})
	}

	return &models.ScheduleResponse{
		PersonID:  personID,
		Date:      date.Format(domain.DateFormat),
		Intervals: intervals,
	}, nil
}

// Delete удаляет бронирование
// Выполненные бронирования не удаляются - только отмена
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeDeleted() {
		s.logger.Warn("Delete: booking id=%d is fulfilled and cannot be deleted", id)
		return ErrCannotDeleteFulfilled
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.emitEvent(ctx, domain.EventDeleted, booking)

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// emitEvent рассылает событие изменения бронирования внешним подписчикам
// Отправка fire-and-forget в отдельной горутине с собственным таймаутом
func (s *Service) emitEvent(ctx context.Context, eventType domain.EventType, booking *domain.Booking) {
	event := domain.BookingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Booking:    booking,
		OccurredAt: time.Now(),
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.notifier.Notify(sendCtx, event)
		s.broadcaster.Broadcast(sendCtx, eventType, booking)
	}()
}

// refCache кэш резолва ссылок в пределах одного запроса
type refCache struct {
	persons    map[int64]*domain.Person
	procedures map[int64]*domain.Procedure
}

func newRefCache() *refCache {
	return &refCache{
		persons:    make(map[int64]*domain.Person),
		procedures: make(map[int64]*domain.Procedure),
	}
}

// enrich резолвит ссылки бронирования в проекцию
// Оборванная ссылка (удалённый мастер/процедура) даёт null-поля, а не ошибку
func (s *Service) enrich(ctx context.Context, b *domain.Booking, cache *refCache) *models.BookingView {
	client := s.lookupPerson(ctx, b.ClientID, cache)
	worker := s.lookupPerson(ctx, b.WorkerID, cache)
	proc := s.lookupProcedure(ctx, b.ProcedureID, cache)
	return models.FromDomainBooking(b, client, worker, proc)
}

func (s *Service) lookupPerson(ctx context.Context, id int64, cache *refCache) *domain.Person {
	if p, ok := cache.persons[id]; ok {
		return p
	}

	p, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, personRepo.ErrPersonNotFound) {
			s.logger.Warn("lookupPerson: failed to resolve person id=%d: %v", id, err)
		}
		p = nil
	}

	cache.persons[id] = p
	return p
}

func (s *Service) lookupProcedure(ctx context.Context, id int64, cache *refCache) *domain.Procedure {
	if p, ok := cache.procedures[id]; ok {
		return p
	}

	p, err := s.procedureRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, procedureRepo.ErrProcedureNotFound) {
			s.logger.Warn("lookupProcedure: failed to resolve procedure id=%d: %v", id, err)
		}
		p = nil
	}

	cache.procedures[id] = p
	return p
}

func nameContains(name *string, substr string) bool {
	if name == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*name), strings.ToLower(substr))
}

// sortViews сортирует проекции по выбранному полю
// null-имена и null-длительности сортируются в конец
func sortViews(views []models.BookingView, sortBy domain.BookingSort) {
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		switch sortBy {
		case domain.SortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		case domain.SortByPrice:
			return a.FinalPrice < b.FinalPrice
		case domain.SortByClientName:
			return lessNullableString(a.ClientName, b.ClientName)
		case domain.SortByWorkerName:
			return lessNullableString(a.WorkerName, b.WorkerName)
		case domain.SortByDuration:
			return lessNullableInt(a.DurationMinutes, b.DurationMinutes)
		default: // domain.SortByStartsAt
			return a.StartsAt < b.StartsAt
		}
	})
}

func lessNullableString(a, b *string) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return strings.ToLower(*a) < strings.ToLower(*b)
}

func lessNullableInt(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}
