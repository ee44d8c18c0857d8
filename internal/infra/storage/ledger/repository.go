package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/dbmetrics"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

// Repository репозиторий кассовых записей
// Кассовая запись создается ровно один раз при завершении записи к барберу
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кассы
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает кассовую запись
// Уникальный индекс по appointment_id страхует от дублей даже при
// некорректном вызове в обход флага registered_in_ledger
func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ledger_entries").
		Columns(
			"appointment_id",
			"branch_id",
			"barber_id",
			"amount",
			"payment_method",
		).
		Values(
			entry.AppointmentID,
			entry.BranchID,
			entry.BarberID,
			entry.Amount,
			entry.PaymentMethod,
		).
		Suffix("RETURNING id, recorded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var recordedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&recordedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: appointment_id=%d", ErrDuplicateEntry, entry.AppointmentID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.RecordedAt = recordedAt.Time

	return entry, nil
}

// GetByAppointmentID получает кассовую запись по ID записи к барберу
func (r *Repository) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.LedgerEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"branch_id",
		"barber_id",
		"amount",
		"payment_method",
		"recorded_at",
	).
		From("ledger_entries").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.LedgerEntry
	var recordedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.AppointmentID,
		&entry.BranchID,
		&entry.BarberID,
		&entry.Amount,
		&entry.PaymentMethod,
		&recordedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - scan entry: %v", ErrScanRow, err)
	}

	entry.RecordedAt = recordedAt.Time

	return &entry, nil
}
