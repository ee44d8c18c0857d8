package complete_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	ledgerRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/ledger"
)

// Фейки зависимостей use case
// fakeAppointmentRepo имитирует семантику условного UPDATE ClaimCompletion:
// право на проведение операции получает ровно один вызов

type fakeAppointmentRepo struct {
	appt *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	out := *f.appt
	return &out, nil
}

func (f *fakeAppointmentRepo) ClaimCompletion(_ context.Context, _ int64) (bool, error) {
	if f.appt.RegisteredInLedger {
		return false, nil
	}
	f.appt.Status = domain.StatusCompleted
	f.appt.RegisteredInLedger = true
	return true, nil
}

func (f *fakeAppointmentRepo) SetLedgerEntry(_ context.Context, _ int64, ledgerEntryID int64) error {
	f.appt.LedgerEntryID = &ledgerEntryID
	return nil
}

type fakeLedgerRepo struct {
	entry     *domain.LedgerEntry
	createCnt int
}

func (f *fakeLedgerRepo) Create(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if f.entry != nil {
		return nil, ledgerRepo.ErrDuplicateEntry
	}
	f.createCnt++
	out := *entry
	out.ID = 900
	f.entry = &out
	return &out, nil
}

func (f *fakeLedgerRepo) GetByAppointmentID(_ context.Context, _ int64) (*domain.LedgerEntry, error) {
	if f.entry == nil {
		return nil, ledgerRepo.ErrEntryNotFound
	}
	return f.entry, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		ClientID:        5,
		BranchID:        1,
		BarberID:        7,
		ServiceID:       10,
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Стрижка модельная",
		ServicePrice:    350,
	}
}

func newTestUseCase(appts *fakeAppointmentRepo, ledger *fakeLedgerRepo) *UseCase {
	return NewUseCase(
		appts,
		ledger,
		fakeTxManager{},
		&fixedTimeProvider{now: time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)},
		noopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	appts := &fakeAppointmentRepo{appt: confirmedAppointment()}
	ledger := &fakeLedgerRepo{}
	uc := newTestUseCase(appts, ledger)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, PaymentMethod: "cash"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.AppointmentID)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.False(t, resp.AlreadyCompleted)
	assert.Equal(t, int64(900), resp.LedgerEntryID)
	// Сумма операции = денормализованная цена услуги на момент создания записи
	assert.Equal(t, float64(350), resp.Amount)
	assert.Equal(t, "cash", resp.PaymentMethod)

	assert.Equal(t, domain.StatusCompleted, appts.appt.Status)
	assert.True(t, appts.appt.RegisteredInLedger)
	require.NotNil(t, appts.appt.LedgerEntryID)
	assert.Equal(t, int64(900), *appts.appt.LedgerEntryID)
}

func TestExecute_Idempotent(t *testing.T) {
	appts := &fakeAppointmentRepo{appt: confirmedAppointment()}
	ledger := &fakeLedgerRepo{}
	uc := newTestUseCase(appts, ledger)

	first, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, PaymentMethod: "card"})
	require.NoError(t, err)
	require.False(t, first.AlreadyCompleted)

	// Повторное завершение возвращает существующую операцию, не создавая вторую
	second, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, PaymentMethod: "cash"})
	require.NoError(t, err)

	assert.True(t, second.AlreadyCompleted)
	assert.Equal(t, first.LedgerEntryID, second.LedgerEntryID)
	assert.Equal(t, first.Amount, second.Amount)
	// Способ оплаты повторного вызова игнорируется: операция уже проведена
	assert.Equal(t, "card", second.PaymentMethod)
	assert.Equal(t, 1, ledger.createCnt)
}

func TestExecute_DuplicateEntryBackstop(t *testing.T) {
	// Запись подтверждена, флаг не выставлен, но операция в кассе уже есть:
	// уникальный индекс по appointment_id возвращает существующую операцию
	appts := &fakeAppointmentRepo{appt: confirmedAppointment()}
	ledger := &fakeLedgerRepo{entry: &domain.LedgerEntry{
		ID:            777,
		AppointmentID: 42,
		Amount:        350,
		PaymentMethod: domain.PaymentCash,
	}}
	uc := newTestUseCase(appts, ledger)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, PaymentMethod: "cash"})
	require.NoError(t, err)

	assert.True(t, resp.AlreadyCompleted)
	assert.Equal(t, int64(777), resp.LedgerEntryID)
	assert.Zero(t, ledger.createCnt)
}

func TestExecute_InvalidTransition(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			appt := confirmedAppointment()
			appt.Status = status
			ledger := &fakeLedgerRepo{}
			uc := newTestUseCase(&fakeAppointmentRepo{appt: appt}, ledger)

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, PaymentMethod: "cash"})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Zero(t, ledger.createCnt)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appt: confirmedAppointment()}, &fakeLedgerRepo{})

	t.Run("zero id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0, PaymentMethod: "cash"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, PaymentMethod: "crypto"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
