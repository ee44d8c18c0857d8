package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	appointmentRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/appointment"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/appointments/models"
)

// Фейк репозитория записей

type fakeAppointmentRepo struct {
	appt         *domain.Appointment
	list         []*domain.Appointment
	lastFilter   domain.BarberAgendaFilter
	cancelled    bool
	cancelReason *string
	newStatus    domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appt == nil || f.appt.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	out := *f.appt
	return &out, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.BarberAgendaFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	f.newStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, _ int64, reason *string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		ClientID:        5,
		BranchID:        1,
		BarberID:        7,
		ServiceID:       10,
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          domain.StatusPending,
		ServiceName:     "Стрижка модельная",
		ServicePrice:    350,
	}
}

func TestGetByID_Access(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{"client sees own appointment", 5, nil},
		{"barber sees own appointment", 7, nil},
		{"stranger is rejected", 99, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeAppointmentRepo{appt: pendingAppointment()}, noopLogger{})

			resp, err := svc.GetByID(context.Background(), 42, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), resp.ID)
			assert.Equal(t, "2026-09-15", resp.AppointmentDate)
			assert.Equal(t, "10:00", resp.StartTime)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetBarberAgenda(t *testing.T) {
	t.Run("only the barber may view the agenda", func(t *testing.T) {
		svc := NewService(&fakeAppointmentRepo{}, noopLogger{})

		_, err := svc.GetBarberAgenda(context.Background(), &models.GetBarberAgendaRequest{
			UserID: 5, BarberID: 7,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("filter is passed through", func(t *testing.T) {
		repo := &fakeAppointmentRepo{list: []*domain.Appointment{pendingAppointment()}}
		svc := NewService(repo, noopLogger{})

		branchID := int64(1)
		date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		resp, err := svc.GetBarberAgenda(context.Background(), &models.GetBarberAgendaRequest{
			UserID:          7,
			BarberID:        7,
			BranchID:        &branchID,
			Date:            &date,
			IncludeInactive: true,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(7), repo.lastFilter.BarberID)
		require.NotNil(t, repo.lastFilter.BranchID)
		assert.Equal(t, branchID, *repo.lastFilter.BranchID)
		assert.True(t, repo.lastFilter.IncludeInactive)
	})
}

func TestCancel(t *testing.T) {
	reason := "клиент заболел"

	t.Run("client cancels pending", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appt: pendingAppointment()}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
			UserID:             5,
			CancellationReason: &reason,
		})
		require.NoError(t, err)
		assert.True(t, repo.cancelled)
		require.NotNil(t, repo.cancelReason)
		assert.Equal(t, reason, *repo.cancelReason)
	})

	t.Run("barber cancels confirmed", func(t *testing.T) {
		appt := pendingAppointment()
		appt.Status = domain.StatusConfirmed
		repo := &fakeAppointmentRepo{appt: appt}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 7})
		require.NoError(t, err)
		assert.True(t, repo.cancelled)
	})

	t.Run("terminal status cannot be cancelled", func(t *testing.T) {
		for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
			appt := pendingAppointment()
			appt.Status = status
			repo := &fakeAppointmentRepo{appt: appt}
			svc := NewService(repo, noopLogger{})

			err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 5})
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.False(t, repo.cancelled)
		}
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appt: pendingAppointment()}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestConfirm(t *testing.T) {
	t.Run("barber confirms pending", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appt: pendingAppointment()}
		svc := NewService(repo, noopLogger{})

		err := svc.Confirm(context.Background(), 42, &models.ConfirmAppointmentRequest{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.newStatus)
	})

	t.Run("client cannot confirm", func(t *testing.T) {
		repo := &fakeAppointmentRepo{appt: pendingAppointment()}
		svc := NewService(repo, noopLogger{})

		err := svc.Confirm(context.Background(), 42, &models.ConfirmAppointmentRequest{UserID: 5})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("confirming a completed appointment is rejected", func(t *testing.T) {
		appt := pendingAppointment()
		appt.Status = domain.StatusCompleted
		repo := &fakeAppointmentRepo{appt: appt}
		svc := NewService(repo, noopLogger{})

		err := svc.Confirm(context.Background(), 42, &models.ConfirmAppointmentRequest{UserID: 7})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
