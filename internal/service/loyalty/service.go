// Package loyalty пересчёт уровня лояльности клиента по количеству визитов
package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
)

// Service сервис пересчёта уровня лояльности
type Service struct {
	personRepo PersonRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса лояльности
func NewService(personRepo PersonRepository, logger Logger) *Service {
	return &Service{
		personRepo: personRepo,
		logger:     logger,
	}
}

// ReconcileTier пересчитывает уровень лояльности клиента по visits_count.
// No-op, если уровень worker или установлен ручной флаг.
// Идемпотентна: повторный вызов с тем же visits_count уровень не меняет.
func (s *Service) ReconcileTier(ctx context.Context, clientID int64) error {
	person, err := s.personRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			s.logger.Warn("ReconcileTier: person id=%d not found", clientID)
			return ErrPersonNotFound
		}
		s.logger.Error("ReconcileTier: failed to get person id=%d: %v", clientID, err)
		return fmt.Errorf("%w: ReconcileTier - failed to get person: %v", ErrInternal, err)
	}

	if person.TierFrozen() {
		s.logger.Info("ReconcileTier: tier frozen for person id=%d, skipping", clientID)
		return nil
	}

	newTier := domain.TierForVisits(person.VisitsCount)
	if tiersEqual(person.LoyaltyTier, newTier) {
		return nil
	}

	if err := s.personRepo.UpdateVisitsAndTier(ctx, clientID, person.VisitsCount, newTier); err != nil {
		s.logger.Error("ReconcileTier: failed to update tier for person id=%d: %v", clientID, err)
		return fmt.Errorf("%w: ReconcileTier - failed to update tier: %v", ErrInternal, err)
	}

	s.logger.Info("ReconcileTier: person id=%d tier changed %s -> %s (visits=%d)",
		clientID, tierString(person.LoyaltyTier), tierString(newTier), person.VisitsCount)
	return nil
}

func tiersEqual(a, b *domain.LoyaltyTier) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func tierString(t *domain.LoyaltyTier) string {
	if t == nil {
		return "none"
	}
	return string(*t)
}
