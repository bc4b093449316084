package timesheet

import (
	"github.com/shopspring/decimal"
)

type ReviewTimesheetRequest struct {
	ID         string `json:"-"`
	ReviewerID string `json:"-"`
}

type TimesheetResponse struct {
	ID           string                     `json:"id"`
	EmployeeID   string                     `json:"employee_id"`
	PayPeriodID  string                     `json:"pay_period_id"`
	Status       string                     `json:"status"`
	TotalHours   decimal.Decimal            `json:"total_hours"`
	LeaveAccrued map[string]decimal.Decimal `json:"leave_accrued,omitempty"`
}

func NewTimesheetResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:          t.ID,
		EmployeeID:  t.EmployeeID,
		PayPeriodID: t.PayPeriodID,
		Status:      string(t.Status),
		TotalHours:  t.TotalHours,
	}
}
