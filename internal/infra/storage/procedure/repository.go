package procedure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения процедур и их состава
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает процедуру вместе с составом материалов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"created_at",
		"updated_at",
	).
		From("procedures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var proc domain.Procedure
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&proc.ID,
		&proc.Name,
		&proc.DurationMinutes,
		&proc.Price,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProcedureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan procedure: %v", ErrScanRow, err)
	}

	proc.CreatedAt = createdAt.Time
	proc.UpdatedAt = updatedAt.Time

	materials, err := r.getMaterials(ctx, id)
	if err != nil {
		return nil, err
	}
	proc.Materials = materials

	return &proc, nil
}

// MinDurationMinutes возвращает минимальную длительность среди всех процедур
// Если процедур нет, возвращает (0, false, nil)
func (r *Repository) MinDurationMinutes(ctx context.Context) (int, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("MIN(duration_minutes)").
		From("procedures").
		ToSql()

	if err != nil {
		return 0, false, fmt.Errorf("%w: MinDurationMinutes - build select query: %v", ErrBuildQuery, err)
	}

	var min sql.NullInt64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&min); err != nil {
		return 0, false, fmt.Errorf("%w: MinDurationMinutes - scan: %v", ErrScanRow, err)
	}

	if !min.Valid {
		return 0, false, nil
	}

	return int(min.Int64), true, nil
}

// getMaterials получает состав процедуры в порядке позиций
func (r *Repository) getMaterials(ctx context.Context, procedureID int64) ([]domain.BOMItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("material_id", "qty_per_procedure").
		From("procedure_materials").
		Where(squirrel.Eq{"procedure_id": procedureID}).
		OrderBy("position ASC, material_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getMaterials - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getMaterials - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.BOMItem, 0)
	for rows.Next() {
		var item domain.BOMItem
		if err := rows.Scan(&item.MaterialID, &item.QtyPerProcedure); err != nil {
			return nil, fmt.Errorf("%w: getMaterials - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getMaterials - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
