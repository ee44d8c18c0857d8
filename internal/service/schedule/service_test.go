package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	blockRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/block"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule/models"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// Фейки репозиториев

type fakeScheduleRepo struct {
	schedule *domain.BranchSchedule
	upserted *domain.WeekdayHours
}

func (f *fakeScheduleRepo) GetByBranch(_ context.Context, branchID int64) (*domain.BranchSchedule, error) {
	if f.schedule != nil {
		return f.schedule, nil
	}
	return &domain.BranchSchedule{BranchID: branchID, Days: map[time.Weekday]*domain.WeekdayHours{}}, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, hours *domain.WeekdayHours) (*domain.WeekdayHours, error) {
	f.upserted = hours
	return hours, nil
}

type fakeBlockRepo struct {
	created   *domain.Block
	list      []*domain.Block
	deleteErr error
	deletedID int64
}

func (f *fakeBlockRepo) Create(_ context.Context, blk *domain.Block) (*domain.Block, error) {
	out := *blk
	out.ID = 55
	f.created = &out
	return &out, nil
}

func (f *fakeBlockRepo) ListByBarber(_ context.Context, _ int64) ([]*domain.Block, error) {
	return f.list, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id int64, _ int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string {
	return &s
}

func newTestService(sched *fakeScheduleRepo, blocks *fakeBlockRepo) *Service {
	return NewService(sched, blocks, noopLogger{})
}

func TestGetBranchSchedule_FillsMissingDaysClosed(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: &domain.BranchSchedule{
		BranchID: 1,
		Days: map[time.Weekday]*domain.WeekdayHours{
			time.Monday: {
				BranchID: 1,
				Weekday:  time.Monday,
				IsOpen:   true,
				OpensAt:  "09:00",
				ClosesAt: "19:00",
			},
		},
	}}
	svc := newTestService(sched, &fakeBlockRepo{})

	resp, err := svc.GetBranchSchedule(context.Background(), 1)
	require.NoError(t, err)

	// Всегда семь дней, воскресенье первым
	require.Len(t, resp.Days, 7)
	assert.Equal(t, int(time.Sunday), resp.Days[0].Weekday)
	assert.False(t, resp.Days[0].IsOpen)

	monday := resp.Days[int(time.Monday)]
	assert.True(t, monday.IsOpen)
	assert.Equal(t, "09:00", monday.OpensAt)
	assert.Equal(t, "19:00", monday.ClosesAt)
}

func TestUpdateWeekdayHours(t *testing.T) {
	t.Run("valid hours with lunch", func(t *testing.T) {
		sched := &fakeScheduleRepo{}
		svc := newTestService(sched, &fakeBlockRepo{})

		resp, err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			BranchID:   1,
			Weekday:    1,
			IsOpen:     true,
			OpensAt:    "09:00",
			ClosesAt:   "19:00",
			LunchStart: strPtr("13:00"),
			LunchEnd:   strPtr("14:00"),
		})
		require.NoError(t, err)

		assert.True(t, resp.IsOpen)
		assert.Equal(t, "09:00", resp.OpensAt)
		require.NotNil(t, sched.upserted)
		assert.Equal(t, time.Monday, sched.upserted.Weekday)
	})

	t.Run("closed day skips time validation", func(t *testing.T) {
		sched := &fakeScheduleRepo{}
		svc := newTestService(sched, &fakeBlockRepo{})

		resp, err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			BranchID: 1,
			Weekday:  0,
			IsOpen:   false,
		})
		require.NoError(t, err)
		assert.False(t, resp.IsOpen)
	})

	t.Run("inverted hours rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockRepo{})

		_, err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			BranchID: 1,
			Weekday:  1,
			IsOpen:   true,
			OpensAt:  "19:00",
			ClosesAt: "09:00",
		})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("lunch outside business hours rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockRepo{})

		_, err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			BranchID:   1,
			Weekday:    1,
			IsOpen:     true,
			OpensAt:    "09:00",
			ClosesAt:   "19:00",
			LunchStart: strPtr("08:00"),
			LunchEnd:   strPtr("09:30"),
		})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("invalid weekday rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockRepo{})

		_, err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			BranchID: 1,
			Weekday:  7,
			IsOpen:   false,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreateBlock(t *testing.T) {
	t.Run("recurring short break", func(t *testing.T) {
		blocks := &fakeBlockRepo{}
		svc := newTestService(&fakeScheduleRepo{}, blocks)

		resp, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			UserID:    7,
			BarberID:  7,
			BranchID:  1,
			Kind:      "short_break",
			Weekdays:  []int{1, 2, 3},
			StartTime: strPtr("13:00"),
			EndTime:   strPtr("13:30"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(55), resp.ID)
		assert.Equal(t, "short_break", resp.Kind)
		assert.Equal(t, []int{1, 2, 3}, resp.Weekdays)
		require.NotNil(t, blocks.created)
		assert.True(t, blocks.created.Weekdays.Contains(time.Tuesday))
	})

	t.Run("full day closure", func(t *testing.T) {
		blocks := &fakeBlockRepo{}
		svc := newTestService(&fakeScheduleRepo{}, blocks)

		resp, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			UserID:   7,
			BarberID: 7,
			BranchID: 1,
			Kind:     "full_day_closure",
			Date:     strPtr("2026-09-15"),
			Reason:   strPtr("отпуск"),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Date)
		assert.Equal(t, "2026-09-15", *resp.Date)
	})

	t.Run("only the barber can create own blocks", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockRepo{})

		_, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			UserID:   5,
			BarberID: 7,
			BranchID: 1,
			Kind:     "full_day_closure",
			Date:     strPtr("2026-09-15"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockRepo{})

		_, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			UserID:   7,
			BarberID: 7,
			BranchID: 1,
			Kind:     "vacation",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("short break without window rejected", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockRepo{})

		_, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			UserID:   7,
			BarberID: 7,
			BranchID: 1,
			Kind:     "short_break",
			Weekdays: []int{1},
		})
		assert.ErrorIs(t, err, ErrInvalidBlock)
	})
}

func TestListBlocks(t *testing.T) {
	start := types.TimeString("13:00")
	end := types.TimeString("13:30")
	blocks := &fakeBlockRepo{list: []*domain.Block{
		{ID: 1, BarberID: 7, Kind: domain.BlockShortBreak, Weekdays: domain.NewWeekdaySet(time.Monday), StartTime: &start, EndTime: &end},
	}}
	svc := newTestService(&fakeScheduleRepo{}, blocks)

	resp, err := svc.ListBlocks(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "short_break", resp.Blocks[0].Kind)
}

func TestDeleteBlock(t *testing.T) {
	t.Run("own block deleted", func(t *testing.T) {
		blocks := &fakeBlockRepo{}
		svc := newTestService(&fakeScheduleRepo{}, blocks)

		err := svc.DeleteBlock(context.Background(), 55, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(55), blocks.deletedID)
	})

	t.Run("missing or foreign block", func(t *testing.T) {
		blocks := &fakeBlockRepo{deleteErr: blockRepo.ErrBlockNotFound}
		svc := newTestService(&fakeScheduleRepo{}, blocks)

		err := svc.DeleteBlock(context.Background(), 55, 7)
		assert.ErrorIs(t, err, ErrBlockNotFound)
	})
}
