package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/memory"
	payrollService "github.com/cmlabs-hris/hris-payroll/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarJobs(store *memory.Store, today time.Time) *CalendarJobs {
	svc := payrollService.NewPeriodService(store, store.PayPeriods(), store.Payrolls(), payroll.DefaultSchedule())
	jobs := NewCalendarJobs(store.PayPeriods(), svc, 7)
	jobs.now = func() time.Time { return today }
	return jobs
}

func seedPeriod(t *testing.T, store *memory.Store) {
	t.Helper()
	svc := payrollService.NewPeriodService(store, store.PayPeriods(), store.Payrolls(), payroll.DefaultSchedule())
	_, err := svc.CreatePeriod(context.Background(), payroll.CreatePayPeriodRequest{
		StartDate: "2024-06-02",
		EndDate:   "2024-06-15",
	})
	require.NoError(t, err)
}

func TestExtendCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("empty calendar", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, newCalendarJobs(store, utils.NewDate(2024, 6, 12)).ExtendCalendar(ctx))

		periods, err := store.PayPeriods().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, periods)
	})

	t.Run("latest period ends far ahead", func(t *testing.T) {
		store := memory.NewStore()
		seedPeriod(t, store)
		require.NoError(t, newCalendarJobs(store, utils.NewDate(2024, 6, 3)).ExtendCalendar(ctx))

		periods, err := store.PayPeriods().List(ctx)
		require.NoError(t, err)
		assert.Len(t, periods, 1)
	})

	t.Run("latest period ends within lead time", func(t *testing.T) {
		store := memory.NewStore()
		seedPeriod(t, store)
		jobs := newCalendarJobs(store, utils.NewDate(2024, 6, 12))
		require.NoError(t, jobs.ExtendCalendar(ctx))

		latest, err := store.PayPeriods().GetLatest(ctx)
		require.NoError(t, err)
		assert.Equal(t, utils.NewDate(2024, 6, 16), latest.StartDate)
		assert.Equal(t, payroll.PeriodDraft, latest.Status)

		// The new period ends beyond the lead time, so a second run is a no-op.
		require.NoError(t, jobs.ExtendCalendar(ctx))
		periods, err := store.PayPeriods().List(ctx)
		require.NoError(t, err)
		assert.Len(t, periods, 2)
	})
}

func TestScheduler_RunOnce(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler()
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	assert.EqualValues(t, 2, calls.Load())
}

func TestScheduler_StartStop(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := NewScheduler()
	s.AddJob("signal", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
	s.Stop()
}
