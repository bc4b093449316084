package timesheet

import "context"

type TimesheetService interface {
	Submit(ctx context.Context, id string) (TimesheetResponse, error)
	// Approve is the only path that triggers leave accrual.
	Approve(ctx context.Context, req ReviewTimesheetRequest) (TimesheetResponse, error)
	Reject(ctx context.Context, req ReviewTimesheetRequest) (TimesheetResponse, error)
	Reopen(ctx context.Context, id string) (TimesheetResponse, error)
}
