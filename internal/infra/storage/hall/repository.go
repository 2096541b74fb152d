package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/dbmetrics"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки Postgres при нарушении unique-констрейнта
const pqUniqueViolation = "23505"

var hallColumns = []string{
	"id",
	"name",
	"type",
	"capacity",
	"description",
	"facilities",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с залами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый зал
func (r *Repository) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("halls").
		Columns("name", "type", "capacity", "description", "facilities", "is_active").
		Values(
			hall.Name,
			hall.Type,
			hall.Capacity,
			hall.Description,
			pq.StringArray(hall.Facilities),
			hall.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hall.ID, &createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return hall, nil
}

// GetByID получает зал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var hall domain.Hall
	var facilities pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Type,
		&hall.Capacity,
		&hall.Description,
		&facilities,
		&hall.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}

	hall.Facilities = facilities
	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return &hall, nil
}

// List получает список залов, отсортированных по имени.
// onlyActive ограничивает выборку залами, доступными для бронирования.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hallColumns...).
		From("halls").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		var hall domain.Hall
		var facilities pq.StringArray
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Type,
			&hall.Capacity,
			&hall.Description,
			&facilities,
			&hall.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		hall.Facilities = facilities
		hall.CreatedAt = createdAt.Time
		hall.UpdatedAt = updatedAt.Time

		halls = append(halls, &hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return halls, nil
}

// Update обновляет данные зала, включая флаг is_active (деактивация).
// Залы не удаляются физически - только деактивируются.
func (r *Repository) Update(ctx context.Context, hall *domain.Hall) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("halls").
		Set("name", hall.Name).
		Set("type", hall.Type).
		Set("capacity", hall.Capacity).
		Set("description", hall.Description).
		Set("facilities", pq.StringArray(hall.Facilities)).
		Set("is_active", hall.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": hall.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrHallNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
