package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayPeriodRepository interface {
	Create(ctx context.Context, period PayPeriod) (PayPeriod, error)
	GetByID(ctx context.Context, id string) (PayPeriod, error)
	// List returns all periods ordered by start date.
	List(ctx context.Context) ([]PayPeriod, error)
	// GetLatest returns the period with the latest end date.
	GetLatest(ctx context.Context) (PayPeriod, error)
	ListOverlapping(ctx context.Context, start, end time.Time) ([]PayPeriod, error)
	CountStartingInYear(ctx context.Context, year int) (int, error)
	// UpdateDates rewrites the dates of a Draft period. Non-Draft periods
	// yield ErrInvalidState.
	UpdateDates(ctx context.Context, period PayPeriod) (PayPeriod, error)
	// TransitionStatus moves a period from one status to another atomically.
	// A period not in from yields ErrInvalidState.
	TransitionStatus(ctx context.Context, id string, from, to PeriodStatus) (PayPeriod, error)
	// LockCalendar serializes calendar edits for the rest of the transaction.
	LockCalendar(ctx context.Context) error
}

type PayrollRepository interface {
	// Create persists the payslip with its entries. A second payslip for the
	// same employee and period yields ErrPayrollExists.
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	ListByPeriod(ctx context.Context, periodID string) ([]Payroll, error)
	ListEmployeeIDsByPeriod(ctx context.Context, periodID string) ([]string, error)
	UpdateStatusByPeriod(ctx context.Context, periodID string, from, to PayrollStatus) (int64, error)
	SumGrossByPeriod(ctx context.Context, periodID string) (decimal.Decimal, error)
}
