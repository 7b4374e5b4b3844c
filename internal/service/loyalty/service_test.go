package loyalty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	personRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/person"
)

type fakePersonRepo struct {
	persons map[int64]*domain.Person

	updatedTier *domain.LoyaltyTier
	updateCalls int
}

func (f *fakePersonRepo) GetByID(_ context.Context, id int64) (*domain.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return nil, personRepo.ErrPersonNotFound
	}
	return p, nil
}

func (f *fakePersonRepo) UpdateVisitsAndTier(_ context.Context, _ int64, _ int, tier *domain.LoyaltyTier) error {
	f.updatedTier = tier
	f.updateCalls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func client(visits int, tier *domain.LoyaltyTier, manual bool) *domain.Person {
	return &domain.Person{
		ID:                1,
		Name:              "Анна",
		Role:              domain.RoleClient,
		VisitsCount:       visits,
		LoyaltyTier:       tier,
		ManualLoyaltyTier: manual,
	}
}

func tierPtr(tier domain.LoyaltyTier) *domain.LoyaltyTier {
	return &tier
}

func TestReconcileTier_PromotesToBronze(t *testing.T) {
	repo := &fakePersonRepo{persons: map[int64]*domain.Person{1: client(10, nil, false)}}
	svc := NewService(repo, nopLogger{})

	err := svc.ReconcileTier(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, 1, repo.updateCalls)
	require.NotNil(t, repo.updatedTier)
	assert.Equal(t, domain.TierBronze, *repo.updatedTier)
}

func TestReconcileTier_DemotesBelowThreshold(t *testing.T) {
	// Визитов 9 - уровень bronze снимается
	repo := &fakePersonRepo{persons: map[int64]*domain.Person{1: client(9, tierPtr(domain.TierBronze), false)}}
	svc := NewService(repo, nopLogger{})

	err := svc.ReconcileTier(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, 1, repo.updateCalls)
	assert.Nil(t, repo.updatedTier)
}

func TestReconcileTier_NoChangeNoWrite(t *testing.T) {
	repo := &fakePersonRepo{persons: map[int64]*domain.Person{1: client(30, tierPtr(domain.TierSilver), false)}}
	svc := NewService(repo, nopLogger{})

	err := svc.ReconcileTier(context.Background(), 1)

	require.NoError(t, err)
	assert.Zero(t, repo.updateCalls)
}

func TestReconcileTier_ManualTierFrozen(t *testing.T) {
	// Ручной уровень не пересчитывается, сколько бы визитов ни было
	repo := &fakePersonRepo{persons: map[int64]*domain.Person{1: client(100, tierPtr(domain.TierBronze), true)}}
	svc := NewService(repo, nopLogger{})

	err := svc.ReconcileTier(context.Background(), 1)

	require.NoError(t, err)
	assert.Zero(t, repo.updateCalls)
}

func TestReconcileTier_WorkerTierFrozen(t *testing.T) {
	repo := &fakePersonRepo{persons: map[int64]*domain.Person{1: client(0, tierPtr(domain.TierWorker), false)}}
	svc := NewService(repo, nopLogger{})

	err := svc.ReconcileTier(context.Background(), 1)

	require.NoError(t, err)
	assert.Zero(t, repo.updateCalls)
}

func TestReconcileTier_PersonNotFound(t *testing.T) {
	repo := &fakePersonRepo{persons: map[int64]*domain.Person{}}
	svc := NewService(repo, nopLogger{})

	err := svc.ReconcileTier(context.Background(), 1)

	assert.ErrorIs(t, err, ErrPersonNotFound)
}
