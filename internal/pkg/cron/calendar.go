package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
)

// CalendarJobs keeps the pay calendar ahead of the clock by appending the
// next period once the latest one is close to ending.
type CalendarJobs struct {
	periodRepo    payroll.PayPeriodRepository
	periodService payroll.PeriodService
	leadDays      int
	now           func() time.Time
}

func NewCalendarJobs(periodRepo payroll.PayPeriodRepository, periodService payroll.PeriodService, leadDays int) *CalendarJobs {
	return &CalendarJobs{
		periodRepo:    periodRepo,
		periodService: periodService,
		leadDays:      leadDays,
		now:           time.Now,
	}
}

func (j *CalendarJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("extend_pay_calendar", interval, j.ExtendCalendar)
}

// ExtendCalendar creates the next pay period when the latest period ends
// within leadDays of today. An empty calendar is left alone; the first
// periods have to be laid out explicitly.
func (j *CalendarJobs) ExtendCalendar(ctx context.Context) error {
	latest, err := j.periodRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrPayPeriodNotFound) {
			slog.DebugContext(ctx, "Pay calendar is empty, nothing to extend")
			return nil
		}
		return err
	}

	today := utils.Date(j.now())
	if utils.DaysBetween(today, latest.EndDate) > j.leadDays {
		return nil
	}

	created, err := j.periodService.CreateNextPeriod(ctx)
	if err != nil {
		// Another instance may have extended the calendar first.
		if errors.Is(err, payroll.ErrPeriodOverlap) {
			return nil
		}
		return err
	}
	slog.InfoContext(ctx, "Pay period created by calendar job",
		"period_id", created.ID,
		"start_date", created.StartDate,
		"end_date", created.EndDate,
	)
	return nil
}
