package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type PeriodServiceImpl struct {
	tx          database.Transactor
	periodRepo  payroll.PayPeriodRepository
	payrollRepo payroll.PayrollRepository
	schedule    payroll.Schedule
	now         func() time.Time
}

func NewPeriodService(
	tx database.Transactor,
	periodRepo payroll.PayPeriodRepository,
	payrollRepo payroll.PayrollRepository,
	schedule payroll.Schedule,
) payroll.PeriodService {
	return &PeriodServiceImpl{
		tx:          tx,
		periodRepo:  periodRepo,
		payrollRepo: payrollRepo,
		schedule:    schedule,
		now:         time.Now,
	}
}

func (s *PeriodServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePayPeriodRequest) (payroll.PayPeriodResponse, error) {
	period, err := req.Validate()
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	if period.PaymentDate.IsZero() {
		period.PaymentDate = utils.AddDays(period.EndDate, s.schedule.PaymentOffsetDays)
	}

	var created payroll.PayPeriod
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureNoOverlap(ctx, period); err != nil {
			return err
		}
		created, err = s.periodRepo.Create(ctx, period)
		return err
	})
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}

	slog.InfoContext(ctx, "pay period created",
		"period_id", created.ID,
		"start_date", utils.FormatDate(created.StartDate),
		"end_date", utils.FormatDate(created.EndDate),
	)
	return s.toResponse(ctx, created)
}

// UpdatePeriod rewrites the dates of a Draft period.
func (s *PeriodServiceImpl) UpdatePeriod(ctx context.Context, req payroll.UpdatePayPeriodRequest) (payroll.PayPeriodResponse, error) {
	period, err := req.Validate()
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	if period.PaymentDate.IsZero() {
		period.PaymentDate = utils.AddDays(period.EndDate, s.schedule.PaymentOffsetDays)
	}

	var updated payroll.PayPeriod
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.periodRepo.GetByID(ctx, period.ID)
		if err != nil {
			return err
		}
		if !current.IsEditable() {
			return payroll.ErrInvalidState
		}
		if err := s.ensureNoOverlap(ctx, period); err != nil {
			return err
		}
		updated, err = s.periodRepo.UpdateDates(ctx, period)
		return err
	})
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	return s.toResponse(ctx, updated)
}

func (s *PeriodServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PayPeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	return s.toResponse(ctx, p)
}

func (s *PeriodServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PayPeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	out := make([]payroll.PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		resp, err := s.toResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// CreateNextPeriod appends one period to the calendar, starting the day
// after the latest period ends.
func (s *PeriodServiceImpl) CreateNextPeriod(ctx context.Context) (payroll.PayPeriodResponse, error) {
	var created payroll.PayPeriod
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.periodRepo.LockCalendar(ctx); err != nil {
			return err
		}
		latest, err := s.periodRepo.GetLatest(ctx)
		if err != nil {
			if errors.Is(err, payroll.ErrPayPeriodNotFound) {
				return payroll.ErrNoPeriods
			}
			return err
		}
		next := s.schedule.NextAfter(latest)
		if err := s.ensureNoOverlap(ctx, next); err != nil {
			return err
		}
		created, err = s.periodRepo.Create(ctx, next)
		return err
	})
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	return s.toResponse(ctx, created)
}

// CreateAnnualPeriods lays out a full year of periods from the first Sunday
// of the year. It refuses to run if any period already starts in that year.
func (s *PeriodServiceImpl) CreateAnnualPeriods(ctx context.Context, req payroll.CreateAnnualPeriodsRequest) ([]payroll.PayPeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created []payroll.PayPeriod
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.periodRepo.LockCalendar(ctx); err != nil {
			return err
		}
		n, err := s.periodRepo.CountStartingInYear(ctx, req.Year)
		if err != nil {
			return err
		}
		if n > 0 {
			return payroll.ErrAnnualPeriodsExist
		}

		periods := s.schedule.Annual(req.Year)
		if len(periods) == 0 {
			return nil
		}
		existing, err := s.periodRepo.ListOverlapping(ctx, periods[0].StartDate, periods[len(periods)-1].EndDate)
		if err != nil {
			return err
		}
		for _, p := range periods {
			if payroll.FindOverlap(existing, p) != nil {
				return payroll.ErrPeriodOverlap
			}
			c, err := s.periodRepo.Create(ctx, p)
			if err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "annual pay periods created", "year", req.Year, "count", len(created))

	today := s.now()
	out := make([]payroll.PayPeriodResponse, 0, len(created))
	for _, p := range created {
		out = append(out, payroll.NewPayPeriodResponse(p, today, decimal.Zero))
	}
	return out, nil
}

// ensureNoOverlap takes the calendar lock and checks candidate against
// existing periods. Must run inside a transaction.
func (s *PeriodServiceImpl) ensureNoOverlap(ctx context.Context, candidate payroll.PayPeriod) error {
	if err := s.periodRepo.LockCalendar(ctx); err != nil {
		return err
	}
	existing, err := s.periodRepo.ListOverlapping(ctx, candidate.StartDate, candidate.EndDate)
	if err != nil {
		return fmt.Errorf("failed to check overlapping periods: %w", err)
	}
	if p := payroll.FindOverlap(existing, candidate); p != nil {
		return fmt.Errorf("%w: %s to %s", payroll.ErrPeriodOverlap, utils.FormatDate(p.StartDate), utils.FormatDate(p.EndDate))
	}
	return nil
}

func (s *PeriodServiceImpl) toResponse(ctx context.Context, p payroll.PayPeriod) (payroll.PayPeriodResponse, error) {
	total, err := s.payrollRepo.SumGrossByPeriod(ctx, p.ID)
	if err != nil {
		return payroll.PayPeriodResponse{}, fmt.Errorf("failed to total pay period: %w", err)
	}
	return payroll.NewPayPeriodResponse(p, s.now(), total), nil
}
