package timesheet

import (
	"context"
	"time"
)

type TimesheetRepository interface {
	// GetByID loads the timesheet with its entries and total hours.
	GetByID(ctx context.Context, id string) (Timesheet, error)
	// TransitionStatus moves the timesheet from one status to another
	// atomically; a timesheet no longer in from yields ErrInvalidState.
	TransitionStatus(ctx context.Context, id string, from, to Status, actorID *string, at time.Time) (Timesheet, error)
}
