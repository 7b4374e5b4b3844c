// Package inventory списание материалов по составу процедуры при выполнении бронирования
package inventory

import (
	"context"
	"errors"
	"fmt"

	procedureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/procedure"
)

// Service сервис списания материалов
type Service struct {
	procedureRepo ProcedureRepository
	materialRepo  MaterialRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса списания
func NewService(procedureRepo ProcedureRepository, materialRepo MaterialRepository, logger Logger) *Service {
	return &Service{
		procedureRepo: procedureRepo,
		materialRepo:  materialRepo,
		logger:        logger,
	}
}

// Deplete списывает материалы по составу процедуры.
// Best-effort: ошибка списания одной позиции логируется и не мешает
// попыткам списать остальные. Это осознанный выбор в пользу простоты,
// а не строгая складская гарантия.
func (s *Service) Deplete(ctx context.Context, procedureID int64) error {
	proc, err := s.procedureRepo.GetByID(ctx, procedureID)
	if err != nil {
		if errors.Is(err, procedureRepo.ErrProcedureNotFound) {
			s.logger.Warn("Deplete: procedure id=%d not found, nothing to deplete", procedureID)
			return ErrProcedureNotFound
		}
		s.logger.Error("Deplete: failed to get procedure id=%d: %v", procedureID, err)
		return fmt.Errorf("%w: Deplete - failed to get procedure: %v", ErrInternal, err)
	}

	for _, item := range proc.Materials {
		if err := s.materialRepo.DecrementStock(ctx, item.MaterialID, item.QtyPerProcedure); err != nil {
			// Продолжаем списывать остальные позиции
			s.logger.Warn("Deplete: failed to decrement material id=%d by %.3f for procedure id=%d: %v",
				item.MaterialID, item.QtyPerProcedure, procedureID, err)
			continue
		}
	}

	s.logger.Info("Deplete: depleted %d materials for procedure id=%d", len(proc.Materials), procedureID)
	return nil
}
