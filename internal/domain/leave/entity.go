package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType struct {
	ID          string
	Name        string
	Description *string
	IsPaid      bool
	IsActive    bool
	CreatedAt   time.Time
}

// LeaveBalance holds one employee's hours for one leave type in one
// calendar year.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	TotalHours  decimal.Decimal
	UsedHours   decimal.Decimal
	AccrualRate decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	LeaveTypeName string
}

func (b LeaveBalance) RemainingHours() decimal.Decimal {
	return b.TotalHours.Sub(b.UsedHours)
}

// AccrueFromTimesheet adds hoursWorked × AccrualRate / 40 to TotalHours and
// returns the hours added. Non-positive input accrues nothing.
func (b *LeaveBalance) AccrueFromTimesheet(hoursWorked decimal.Decimal) decimal.Decimal {
	if !hoursWorked.IsPositive() {
		return decimal.Zero
	}
	accrued := HoursAccrued(hoursWorked, b.AccrualRate)
	b.TotalHours = b.TotalHours.Add(accrued)
	return accrued
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveTypeID     string
	StartDate       time.Time
	EndDate         time.Time
	IncludeWeekends bool
	Reason          *string
	Status          RequestStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
