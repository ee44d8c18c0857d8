package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/dbmetrics"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"barber_id",
	"branch_id",
	"kind",
	"block_date",
	"weekdays",
	"start_time",
	"end_time",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий блокировок барберов (перерывы, отлучки, выходные)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, blk *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocks").
		Columns(
			"barber_id",
			"branch_id",
			"kind",
			"block_date",
			"weekdays",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			blk.BarberID,
			blk.BranchID,
			blk.Kind,
			blk.Date,
			int(blk.Weekdays),
			blk.StartTime,
			blk.EndTime,
			blk.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blk.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blk.CreatedAt = createdAt.Time
	blk.UpdatedAt = updatedAt.Time

	return blk, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	blk, err := scanBlock(row)
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return blk, nil
}

// GetActiveFor получает блокировки, потенциально действующие для барбера
// на указанную дату: одноразовые блокировки этой даты плюс все регулярные
// перерывы. Точная проверка дня недели остается за domain.Block.AppliesTo
func (r *Repository) GetActiveFor(ctx context.Context, barberID int64, date time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Or{
			squirrel.Eq{"block_date": date},
			squirrel.Eq{"kind": string(domain.BlockShortBreak)},
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveFor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveFor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// ListByBarber получает все блокировки барбера
func (r *Repository) ListByBarber(ctx context.Context, barberID int64) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete удаляет блокировку барбера
// Проверка принадлежности блокировки барберу входит в условие запроса
func (r *Repository) Delete(ctx context.Context, id int64, barberID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlock(row rowScanner) (*domain.Block, error) {
	var blk domain.Block
	var weekdays int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&blk.ID,
		&blk.BarberID,
		&blk.BranchID,
		&blk.Kind,
		&blk.Date,
		&weekdays,
		&blk.StartTime,
		&blk.EndTime,
		&blk.Reason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	blk.Weekdays = domain.WeekdaySet(weekdays)
	blk.CreatedAt = createdAt.Time
	blk.UpdatedAt = updatedAt.Time

	return &blk, nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.Block, error) {
	blocks := make([]*domain.Block, 0)

	for rows.Next() {
		blk, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan block row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
