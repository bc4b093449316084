package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
)

type timesheetRepo struct{ s *Store }

func (r timesheetRepo) GetByID(_ context.Context, id string) (timesheet.Timesheet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ts, ok := r.s.data.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (r timesheetRepo) TransitionStatus(_ context.Context, id string, from, to timesheet.Status, actorID *string, at time.Time) (timesheet.Timesheet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkFault("timesheets.transition"); err != nil {
		return timesheet.Timesheet{}, err
	}
	ts, ok := r.s.data.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	if ts.Status != from {
		return timesheet.Timesheet{}, timesheet.ErrInvalidState
	}

	ts.Status = to
	switch to {
	case timesheet.StatusSubmitted:
		ts.SubmittedAt = &at
	case timesheet.StatusApproved, timesheet.StatusRejected:
		ts.ReviewedAt = &at
		ts.ReviewedBy = actorID
	}
	ts.UpdatedAt = r.s.timestamp()
	r.s.data.timesheets[id] = ts
	return ts, nil
}
