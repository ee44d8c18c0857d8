package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/infra/lock"
	scheduleRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/schedule"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// Фейки зависимостей use case

type fakeAppointmentRepo struct {
	existing   []*domain.Appointment
	created    *domain.Appointment
	createdCnt int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.createdCnt++
	out := *appt
	out.ID = 101
	out.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeAppointmentRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeScheduleRepo struct {
	hours *domain.WeekdayHours
	err   error
}

func (f *fakeScheduleRepo) GetByBranchAndWeekday(_ context.Context, _ int64, _ time.Weekday) (*domain.WeekdayHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetActiveFor(_ context.Context, _ int64, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, nil
}

type fakeCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalogClient) GetService(_ context.Context, _, _ int64) (*catalogservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLocker struct {
	err error
}

func (f *fakeLocker) WithSlotLock(ctx context.Context, _ int64, _ time.Time, _ types.TimeString, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
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

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func standardHours() *domain.WeekdayHours {
	return &domain.WeekdayHours{
		BranchID:   1,
		IsOpen:     true,
		OpensAt:    "09:00",
		ClosesAt:   "19:00",
		LunchStart: timePtr("13:00"),
		LunchEnd:   timePtr("14:00"),
	}
}

func haircut() *catalogservice.Service {
	return &catalogservice.Service{
		ID:              10,
		BranchID:        1,
		Name:            "Стрижка модельная",
		Price:           350,
		DurationMinutes: 45,
		IsActive:        true,
	}
}

type deps struct {
	appointments *fakeAppointmentRepo
	schedule     *fakeScheduleRepo
	blocks       *fakeBlockRepo
	catalog      *fakeCatalogClient
	locker       *fakeLocker
	now          time.Time
}

func defaultDeps() *deps {
	return &deps{
		appointments: &fakeAppointmentRepo{},
		schedule:     &fakeScheduleRepo{hours: standardHours()},
		blocks:       &fakeBlockRepo{},
		catalog:      &fakeCatalogClient{service: haircut()},
		locker:       &fakeLocker{},
		now:          time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(d *deps) *UseCase {
	return NewUseCase(
		d.appointments,
		d.schedule,
		d.blocks,
		d.catalog,
		fakeTxManager{},
		d.locker,
		&fixedTimeProvider{now: d.now},
		noopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		ClientID:  5,
		BranchID:  1,
		BarberID:  7,
		ServiceID: 10,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	d := defaultDeps()
	uc := newTestUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Стрижка модельная", resp.ServiceName)
	assert.Equal(t, float64(350), resp.ServicePrice)

	// Длительность и цена денормализуются из каталога на момент создания
	require.NotNil(t, d.appointments.created)
	assert.Equal(t, domain.StatusPending, d.appointments.created.Status)
	assert.Equal(t, 45, d.appointments.created.DurationMinutes)
}

func TestExecute_SlotConflicts(t *testing.T) {
	tests := []struct {
		name      string
		existing  []*domain.Appointment
		blocks    []*domain.Block
		startTime types.TimeString
		wantErr   error
	}{
		{
			name: "overlaps existing appointment",
			existing: []*domain.Appointment{
				{ID: 1, Status: domain.StatusConfirmed, StartTime: "10:00", DurationMinutes: 45},
			},
			startTime: "10:30",
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name: "starts exactly at existing end",
			existing: []*domain.Appointment{
				{ID: 1, Status: domain.StatusConfirmed, StartTime: "10:00", DurationMinutes: 45},
			},
			startTime: "10:45",
			wantErr:   nil,
		},
		{
			name: "cancelled appointment does not hold the slot",
			existing: []*domain.Appointment{
				{ID: 1, Status: domain.StatusCancelled, StartTime: "10:00", DurationMinutes: 45},
			},
			startTime: "10:00",
			wantErr:   nil,
		},
		{
			name:      "overlaps lunch",
			startTime: "12:30",
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name: "overlaps barber block",
			blocks: []*domain.Block{
				{Kind: domain.BlockShortBreak, Weekdays: domain.NewWeekdaySet(time.Tuesday), StartTime: timePtr("15:00"), EndTime: timePtr("16:00")},
			},
			startTime: "15:30",
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name:      "before opening",
			startTime: "08:30",
			wantErr:   ErrOutsideBusinessHours,
		},
		{
			name:      "runs past closing",
			startTime: "18:30",
			wantErr:   ErrOutsideBusinessHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := defaultDeps()
			d.appointments.existing = tt.existing
			d.blocks.blocks = tt.blocks
			uc := newTestUseCase(d)

			req := validRequest()
			req.StartTime = tt.startTime

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, d.appointments.createdCnt)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, d.appointments.createdCnt)
			}
		})
	}
}

func TestExecute_BranchClosed(t *testing.T) {
	t.Run("explicit closed day", func(t *testing.T) {
		d := defaultDeps()
		d.schedule.hours = &domain.WeekdayHours{IsOpen: false}
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBranchClosed)
	})

	t.Run("missing weekday record fails closed", func(t *testing.T) {
		d := defaultDeps()
		d.schedule.hours = nil
		d.schedule.err = scheduleRepo.ErrHoursNotFound
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBranchClosed)
	})
}

func TestExecute_PastDateAndTime(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		d := defaultDeps()
		d.now = time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC)
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("past time today", func(t *testing.T) {
		d := defaultDeps()
		d.now = time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)
		uc := newTestUseCase(d)

		req := validRequest()
		req.StartTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTimeInPast)
	})

	t.Run("today accepted when process clock runs west of UTC", func(t *testing.T) {
		// Дата запроса в UTC, часы процесса в зоне UTC-6: полночь UTC
		// наступает раньше локальной, но сегодняшняя дата не прошедшая
		d := defaultDeps()
		d.now = time.Date(2026, 9, 15, 9, 0, 0, 0, time.FixedZone("UTC-6", -6*3600))
		uc := newTestUseCase(d)

		req := validRequest()
		req.StartTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("future time today is accepted", func(t *testing.T) {
		d := defaultDeps()
		d.now = time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)
		uc := newTestUseCase(d)

		req := validRequest()
		req.StartTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_ServiceProblems(t *testing.T) {
	t.Run("service not found", func(t *testing.T) {
		d := defaultDeps()
		d.catalog = &fakeCatalogClient{err: catalogservice.ErrServiceNotFound}
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive service maps to not found", func(t *testing.T) {
		d := defaultDeps()
		d.catalog = &fakeCatalogClient{err: catalogservice.ErrServiceInactive}
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid catalog duration", func(t *testing.T) {
		d := defaultDeps()
		svc := haircut()
		svc.DurationMinutes = 0
		d.catalog = &fakeCatalogClient{service: svc}
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestExecute_SlotLockBusy(t *testing.T) {
	d := defaultDeps()
	d.locker = &fakeLocker{err: lock.ErrLockNotAcquired}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBusy)
	assert.Zero(t, d.appointments.createdCnt)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero client", func(req *Request) { req.ClientID = 0 }},
		{"zero barber", func(req *Request) { req.BarberID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"empty start time", func(req *Request) { req.StartTime = "" }},
		{"malformed start time", func(req *Request) { req.StartTime = "9:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(defaultDeps())

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
