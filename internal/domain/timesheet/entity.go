package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// transitions lists the allowed moves. Approved is terminal, so a timesheet
// can be approved at most once.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	StatusRejected:  {StatusDraft},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Timesheet struct {
	ID          string
	EmployeeID  string
	PayPeriodID string
	Status      Status
	// Sum of entry hours, computed by the repository.
	TotalHours  decimal.Decimal
	SubmittedAt *time.Time
	ReviewedAt  *time.Time
	ReviewedBy  *string
	Entries     []TimeEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TimeEntry struct {
	ID          string
	TimesheetID string
	WorkDate    time.Time
	Hours       decimal.Decimal
	Description *string
}

func SumHours(entries []TimeEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Hours)
	}
	return total
}
