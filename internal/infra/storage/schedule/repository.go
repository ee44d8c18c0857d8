package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/dbmetrics"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/psqlbuilder"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

var hoursColumns = []string{
	"id",
	"branch_id",
	"weekday",
	"is_open",
	"opens_at",
	"closes_at",
	"lunch_start",
	"lunch_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписания филиалов (часы работы по дням недели)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBranch получает полное недельное расписание филиала
// Отсутствие каких-либо строк - валидная ситуация (филиал закрыт в эти дни)
func (r *Repository) GetByBranch(ctx context.Context, branchID int64) (*domain.BranchSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("weekday_hours").
		Where(squirrel.Eq{"branch_id": branchID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBranch - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBranch - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := &domain.BranchSchedule{
		BranchID: branchID,
		Days:     make(map[time.Weekday]*domain.WeekdayHours),
	}

	for rows.Next() {
		hours, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBranch - scan hours: %v", ErrScanRow, err)
		}
		result.Days[hours.Weekday] = hours
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBranch - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByBranchAndWeekday получает расписание филиала на конкретный день недели
func (r *Repository) GetByBranchAndWeekday(ctx context.Context, branchID int64, weekday time.Weekday) (*domain.WeekdayHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("weekday_hours").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBranchAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	hours, err := scanHours(row)
	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBranchAndWeekday - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Upsert создает или обновляет расписание филиала на день недели
// Уникальность пары (branch_id, weekday) обеспечена ограничением БД
func (r *Repository) Upsert(ctx context.Context, hours *domain.WeekdayHours) (*domain.WeekdayHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekday_hours").
		Columns(
			"branch_id",
			"weekday",
			"is_open",
			"opens_at",
			"closes_at",
			"lunch_start",
			"lunch_end",
		).
		Values(
			hours.BranchID,
			int(hours.Weekday),
			hours.IsOpen,
			hours.OpensAt,
			hours.ClosesAt,
			hours.LunchStart,
			hours.LunchEnd,
		).
		Suffix(`ON CONFLICT (branch_id, weekday) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			opens_at = EXCLUDED.opens_at,
			closes_at = EXCLUDED.closes_at,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHours(row rowScanner) (*domain.WeekdayHours, error) {
	var hours domain.WeekdayHours
	var weekday int
	var opensAt, closesAt, lunchStart, lunchEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hours.ID,
		&hours.BranchID,
		&weekday,
		&hours.IsOpen,
		&opensAt,
		&closesAt,
		&lunchStart,
		&lunchEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hours.Weekday = time.Weekday(weekday)
	hours.OpensAt = nullableTime(opensAt)
	hours.ClosesAt = nullableTime(closesAt)
	if lunchStart.Valid && lunchEnd.Valid {
		start := nullableTime(lunchStart)
		end := nullableTime(lunchEnd)
		hours.LunchStart = &start
		hours.LunchEnd = &end
	}
	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

func nullableTime(v sql.NullString) types.TimeString {
	if !v.Valid {
		return ""
	}
	return types.TimeString(v.String)
}
