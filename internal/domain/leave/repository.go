package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	ListPaid(ctx context.Context) ([]LeaveType, error)
}

type LeaveBalanceRepository interface {
	// GetOrCreate returns the balance for (employee, leave type, year),
	// inserting seed when none exists. Concurrent callers get the same row.
	GetOrCreate(ctx context.Context, seed LeaveBalance) (LeaveBalance, error)
	// ApplyAccrual sets the accrual rate and adds hours to total_hours.
	ApplyAccrual(ctx context.Context, id string, rate, hours decimal.Decimal) (LeaveBalance, error)
	AddUsedHours(ctx context.Context, id string, hours decimal.Decimal) (LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
}

type LeaveRequestRepository interface {
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// UpdateStatus moves a request out of from. A request no longer in from
	// yields ErrInvalidState.
	UpdateStatus(ctx context.Context, req LeaveRequest, from RequestStatus) (LeaveRequest, error)
}
