package leave

import (
	"context"
)

type AccrualService interface {
	// AccrueLeaveFromTimesheet returns nil without error when the timesheet
	// is not approved or has no hours.
	AccrueLeaveFromTimesheet(ctx context.Context, timesheetID string) (AccrualResult, error)
}

type RequestService interface {
	ApproveLeaveRequest(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestReviewResponse, error)
	RejectLeaveRequest(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestReviewResponse, error)
	ListBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)
}
