package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	"github.com/vecindad/VCN-ReservationService/pkg/dbmetrics"
	"github.com/vecindad/VCN-ReservationService/pkg/psqlbuilder"
)

const facilityColumns = "id, name, price, capacity, icon, color, description, created_at, updated_at"

// Repository репозиторий объектов бронирования (реестр объектов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName получает объект по уникальному имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Facility, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, false)
}

// GetByNameForUpdate получает объект по имени с блокировкой строки (FOR UPDATE).
// Обязан вызываться внутри транзакции: блокировка строки объекта
// сериализует все проверки доступности и вставки бронирований этого объекта.
// Вне транзакции блокировка не берётся, выполняется обычный SELECT
func (r *Repository) GetByNameForUpdate(ctx context.Context, name string) (*domain.Facility, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, dbmetrics.IsInTransaction(ctx))
}

// List возвращает все объекты в стабильном порядке (по имени)
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"capacity",
		"icon",
		"color",
		"description",
		"created_at",
		"updated_at",
	).
		From("facilities").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// Update обновляет цену и вместимость объекта.
// Существующие бронирования не затрагиваются: их цена зафиксирована при создании
func (r *Repository) Update(ctx context.Context, id int64, price float64, capacity int) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facilities").
		Set("price", price).
		Set("capacity", capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + facilityColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, forUpdate bool) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"capacity",
		"icon",
		"color",
		"description",
		"created_at",
		"updated_at",
	).
		From("facilities").
		Where(where)

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := scanFacility(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

func scanFacility(scan func(dest ...interface{}) error) (*domain.Facility, error) {
	var facility domain.Facility
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&facility.ID,
		&facility.Name,
		&facility.Price,
		&facility.Capacity,
		&facility.Icon,
		&facility.Color,
		&facility.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return &facility, nil
}
