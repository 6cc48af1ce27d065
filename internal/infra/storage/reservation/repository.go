package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	"github.com/vecindad/VCN-ReservationService/pkg/dbmetrics"
	"github.com/vecindad/VCN-ReservationService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL, означающие нарушение ограничений целостности
// при конкурентной вставке
const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Вызывается движком допуска внутри транзакции, удерживающей блокировку
// строки объекта. Exclusion constraint в БД страхует от дубликатов
// владельца даже при конкурентной записи в обход блокировки:
// такие нарушения транслируются в ErrOverlapConflict
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"facility",
			"start_time",
			"end_time",
			"price",
			"status",
		).
		Values(
			res.UserID,
			res.FacilityName,
			res.StartTime,
			res.EndTime,
			res.Price,
			res.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pqUniqueViolation, pqExclusionViolation:
				return nil, ErrOverlapConflict
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByUserID получает бронирования пользователя, упорядоченные по началу (сначала новые)
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией,
// упорядоченные по началу (сначала новые)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().OrderBy("start_time DESC")

	if filter.FacilityName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"facility": *filter.FacilityName})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings()})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// CountActiveOverlapping подсчитывает активные бронирования объекта,
// пересекающиеся с интервалом [start, end).
// Полуоткрытая семантика: start_time < end AND end_time > start,
// бронирования "встык" не считаются пересечением.
// Вызывается движком допуска под блокировкой строки объекта
func (r *Repository) CountActiveOverlapping(ctx context.Context, facilityName string, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"facility": facilityName}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ExistsActiveOverlappingForUser проверяет, держит ли пользователь активное
// бронирование объекта, пересекающееся с интервалом [start, end)
func (r *Repository) ExistsActiveOverlappingForUser(ctx context.Context, facilityName string, userID int64, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"facility": facilityName}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveOverlappingForUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsActiveOverlappingForUser - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetActiveByFacilityBetween получает активные бронирования объекта,
// начинающиеся в интервале [dayStart, dayEnd), упорядоченные по началу.
// Используется проекцией занятости для показа календарного дня
func (r *Repository) GetActiveByFacilityBetween(ctx context.Context, facilityName string, dayStart, dayEnd time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"facility": facilityName}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByFacilityBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByFacilityBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// GetStats собирает агрегированную статистику по активным бронированиям:
// общее число, сумма зафиксированных цен и самый популярный объект.
// При равном числе бронирований побеждает лексикографически меньшее имя объекта
func (r *Repository) GetStats(ctx context.Context) (*domain.Stats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	totalsQuery, totalsArgs, err := psqlbuilder.Select(
		"COUNT(*)",
		"COALESCE(SUM(price), 0)",
	).
		From("reservations").
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStats - build totals query: %v", ErrBuildQuery, err)
	}

	var stats domain.Stats
	if err := executor.QueryRowContext(ctx, totalsQuery, totalsArgs...).Scan(
		&stats.TotalReservations,
		&stats.TotalEarnings,
	); err != nil {
		return nil, fmt.Errorf("%w: GetStats - scan totals: %v", ErrScanRow, err)
	}

	popularQuery, popularArgs, err := psqlbuilder.Select("facility").
		From("reservations").
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		GroupBy("facility").
		OrderBy("COUNT(*) DESC", "facility ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStats - build popular query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, popularQuery, popularArgs...).Scan(&stats.MostPopularFacility)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: GetStats - scan popular facility: %v", ErrScanRow, err)
	}

	return &stats, nil
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"facility",
		"start_time",
		"end_time",
		"price",
		"status",
		"created_at",
	).From("reservations")
}

func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := scan(
		&res.ID,
		&res.UserID,
		&res.FacilityName,
		&res.StartTime,
		&res.EndTime,
		&res.Price,
		&res.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
