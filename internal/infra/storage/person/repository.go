package person

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var personColumns = []string{
	"id",
	"name",
	"role",
	"visits_count",
	"loyalty_tier",
	"manual_loyalty_tier",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с людьми (клиенты, мастера, админы)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает человека по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(personColumns...).
		From("persons").
		Where(squirrel.Eq{"id": id})

	// Счётчик визитов обновляется конкурентно при статусных переходах
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	person, err := scanPerson(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan person: %v", ErrScanRow, err)
	}

	return person, nil
}

// ListByRole получает всех людей с указанной ролью
// Используется движком доступности для перебора мастеров
func (r *Repository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Person, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(personColumns...).
		From("persons").
		Where(squirrel.Eq{"role": role}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRole - scan row: %v", ErrScanRow, err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRole - rows error: %v", ErrScanRow, err)
	}

	return persons, nil
}

// UpdateVisitsAndTier сохраняет счётчик визитов и уровень лояльности клиента
func (r *Repository) UpdateVisitsAndTier(ctx context.Context, id int64, visitsCount int, tier *domain.LoyaltyTier) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("persons").
		Set("visits_count", visitsCount).
		Set("loyalty_tier", tier).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateVisitsAndTier - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateVisitsAndTier - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateVisitsAndTier - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var person domain.Person
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Role,
		&person.VisitsCount,
		&person.LoyaltyTier,
		&person.ManualLoyaltyTier,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	person.CreatedAt = createdAt.Time
	person.UpdatedAt = updatedAt.Time

	return &person, nil
}
