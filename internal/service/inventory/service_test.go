package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	materialRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/material"
	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
)

type fakeProcedureRepo struct {
	procedures map[int64]*domain.Procedure
}

func (f *fakeProcedureRepo) GetByID(_ context.Context, id int64) (*domain.Procedure, error) {
	p, ok := f.procedures[id]
	if !ok {
		return nil, procedureRepo.ErrProcedureNotFound
	}
	return p, nil
}

type fakeMaterialRepo struct {
	failFor    map[int64]bool
	decrements map[int64]float64
}

func (f *fakeMaterialRepo) DecrementStock(_ context.Context, materialID int64, qty float64) error {
	if f.failFor[materialID] {
		return materialRepo.ErrMaterialNotFound
	}
	if f.decrements == nil {
		f.decrements = make(map[int64]float64)
	}
	f.decrements[materialID] += qty
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDeplete_DecrementsAllMaterials(t *testing.T) {
	procedures := &fakeProcedureRepo{procedures: map[int64]*domain.Procedure{
		10: {ID: 10, Name: "Окрашивание", Materials: []domain.BOMItem{
			{MaterialID: 100, QtyPerProcedure: 2},
			{MaterialID: 101, QtyPerProcedure: 0.5},
		}},
	}}
	materials := &fakeMaterialRepo{}
	svc := NewService(procedures, materials, nopLogger{})

	err := svc.Deplete(context.Background(), 10)

	require.NoError(t, err)
	assert.InDelta(t, 2.0, materials.decrements[100], 0.001)
	assert.InDelta(t, 0.5, materials.decrements[101], 0.001)
}

func TestDeplete_ContinuesAfterFailedItem(t *testing.T) {
	procedures := &fakeProcedureRepo{procedures: map[int64]*domain.Procedure{
		10: {ID: 10, Materials: []domain.BOMItem{
			{MaterialID: 100, QtyPerProcedure: 1},
			{MaterialID: 101, QtyPerProcedure: 1},
		}},
	}}
	materials := &fakeMaterialRepo{failFor: map[int64]bool{100: true}}
	svc := NewService(procedures, materials, nopLogger{})

	err := svc.Deplete(context.Background(), 10)

	// Сбой одной позиции не мешает списать остальные
	require.NoError(t, err)
	assert.NotContains(t, materials.decrements, int64(100))
	assert.InDelta(t, 1.0, materials.decrements[101], 0.001)
}

func TestDeplete_EmptyBOM(t *testing.T) {
	procedures := &fakeProcedureRepo{procedures: map[int64]*domain.Procedure{
		10: {ID: 10},
	}}
	materials := &fakeMaterialRepo{}
	svc := NewService(procedures, materials, nopLogger{})

	err := svc.Deplete(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, materials.decrements)
}

func TestDeplete_ProcedureNotFound(t *testing.T) {
	svc := NewService(&fakeProcedureRepo{}, &fakeMaterialRepo{}, nopLogger{})

	err := svc.Deplete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrProcedureNotFound)
}
