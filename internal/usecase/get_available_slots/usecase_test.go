package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	scheduleRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/schedule"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// Фейки зависимостей use case

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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

func haircut60() *catalogservice.Service {
	return &catalogservice.Service{
		ID:              10,
		BranchID:        1,
		Name:            "Стрижка модельная",
		Price:           350,
		DurationMinutes: 60,
		IsActive:        true,
	}
}

func newTestUseCase(
	schedule *fakeScheduleRepo,
	blocks *fakeBlockRepo,
	appointments *fakeAppointmentRepo,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	return NewUseCase(schedule, blocks, appointments, catalog, &fixedTimeProvider{now: now}, 15, noopLogger{})
}

func slotByTime(t *testing.T, slots []Slot, start string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime.String() == start {
			return s
		}
	}
	t.Fatalf("slot %s not found", start)
	return Slot{}
}

func TestExecute_FullGridWithLunch(t *testing.T) {
	// Вторник, запрос на будущую дату: часы 09:00-19:00, обед 13:00-14:00,
	// услуга 60 минут, шаг 30 минут
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{service: haircut60()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 30,
	})
	require.NoError(t, err)
	require.Equal(t, 60, resp.DurationMinutes)

	// Кандидаты 09:00 ... 18:00 с шагом 30: услуга должна уместиться до закрытия
	require.Len(t, resp.Slots, 19)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "18:00", resp.Slots[len(resp.Slots)-1].StartTime.String())

	// Первый слот дня доступен, последний заканчивается ровно в закрытие
	assert.True(t, slotByTime(t, resp.Slots, "09:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "18:00").Available)

	// Часовая услуга не может начаться так, чтобы пересечь обед [13:00, 14:00)
	for _, start := range []string{"12:30", "13:00", "13:30"} {
		assert.False(t, slotByTime(t, resp.Slots, start).Available, "slot %s must conflict with lunch", start)
	}

	// Ровно до обеда и сразу после - свободно
	assert.True(t, slotByTime(t, resp.Slots, "12:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "14:00").Available)
}

func TestExecute_ExistingAppointmentConflicts(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	service := haircut60()
	service.DurationMinutes = 15

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 1, Status: domain.StatusConfirmed, StartTime: "10:00", DurationMinutes: 45},
		}},
		&fakeCatalogClient{service: service},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 15,
	})
	require.NoError(t, err)

	// Запись занимает [10:00, 10:45): кандидаты внутри конфликтуют
	assert.False(t, slotByTime(t, resp.Slots, "10:00").Available)
	assert.False(t, slotByTime(t, resp.Slots, "10:30").Available)
	// Начало ровно в конец записи не конфликтует (полуоткрытые интервалы)
	assert.True(t, slotByTime(t, resp.Slots, "10:45").Available)
	assert.True(t, slotByTime(t, resp.Slots, "09:45").Available)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	service := haircut60()
	service.DurationMinutes = 15

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 1, Status: domain.StatusCancelled, StartTime: "10:00", DurationMinutes: 45},
		}},
		&fakeCatalogClient{service: service},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 15,
	})
	require.NoError(t, err)

	assert.True(t, slotByTime(t, resp.Slots, "10:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "10:30").Available)
}

func TestExecute_FullDayClosure(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	closureDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{blocks: []*domain.Block{
			{Kind: domain.BlockFullDay, Date: &closureDate},
		}},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{service: haircut60()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 30,
	})
	require.NoError(t, err)

	// Закрытие на весь день равносильно выходному: слотов нет вообще
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayPastSlotsUnavailable(t *testing.T) {
	// Сегодня 15:00: слоты раньше текущего времени недоступны
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 15, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{service: haircut60()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 30,
	})
	require.NoError(t, err)

	assert.False(t, slotByTime(t, resp.Slots, "14:30").Available)
	// Слот ровно в текущую минуту еще не прошел
	assert.True(t, slotByTime(t, resp.Slots, "15:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "16:00").Available)
}

func TestExecute_TodayInLocalZone(t *testing.T) {
	// Дата запроса парсится в UTC, часы процесса идут в зоне к западу от
	// UTC: сегодняшняя дата не должна считаться прошедшей
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 9, 30, 0, 0, time.FixedZone("UTC-6", -6*3600))

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{service: haircut60()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 30,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	// Отсечка прошедших слотов работает по локальным часам
	assert.False(t, slotByTime(t, resp.Slots, "09:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "09:30").Available)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{service: haircut60()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	date := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC) // воскресенье
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("explicit closed day", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeScheduleRepo{hours: &domain.WeekdayHours{IsOpen: false}},
			&fakeBlockRepo{},
			&fakeAppointmentRepo{},
			&fakeCatalogClient{service: haircut60()},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{
			BranchID: 1, BarberID: 7, ServiceID: 10, Date: date,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("missing weekday record fails closed", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeScheduleRepo{err: scheduleRepo.ErrHoursNotFound},
			&fakeBlockRepo{},
			&fakeAppointmentRepo{},
			&fakeCatalogClient{service: haircut60()},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{
			BranchID: 1, BarberID: 7, ServiceID: 10, Date: date,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_ServiceNotFound(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{err: catalogservice.ErrServiceNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidGranularity(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeScheduleRepo{hours: standardHours()},
		&fakeBlockRepo{},
		&fakeAppointmentRepo{},
		&fakeCatalogClient{service: haircut60()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 1, BarberID: 7, ServiceID: 10, Date: date, GranularityMinutes: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidGranularity)
}

func TestGenerateCandidates(t *testing.T) {
	span := domain.Interval{Start: 540, End: 1140} // 09:00 - 19:00

	t.Run("60 min service, 30 min grid", func(t *testing.T) {
		candidates := generateCandidates(span, 30, 60)
		require.Len(t, candidates, 19)
		assert.Equal(t, 540, candidates[0])
		// Последний кандидат 18:00: заканчивается ровно в закрытие
		assert.Equal(t, 1080, candidates[len(candidates)-1])
	})

	t.Run("service longer than day", func(t *testing.T) {
		candidates := generateCandidates(domain.Interval{Start: 540, End: 600}, 15, 120)
		assert.Empty(t, candidates)
	})
}
