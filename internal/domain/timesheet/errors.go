package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrInvalidState      = errors.New("timesheet is not in a valid state for this operation")
	ErrEmptyTimesheet    = errors.New("timesheet has no recorded hours")
)
