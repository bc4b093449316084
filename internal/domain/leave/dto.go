package leave

import (
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// AccrualResult maps leave type name to hours accrued in one run.
type AccrualResult map[string]decimal.Decimal

type ReviewLeaveRequest struct {
	ID              string  `json:"-"`
	ReviewerID      string  `json:"-"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type LeaveRequestReviewResponse struct {
	ID            string           `json:"id"`
	Status        string           `json:"status"`
	DaysRequested int              `json:"days_requested"`
	HoursDebited  decimal.Decimal  `json:"hours_debited"`
	Balance       *BalanceResponse `json:"balance,omitempty"`
}

type BalanceResponse struct {
	LeaveTypeID    string          `json:"leave_type_id"`
	LeaveTypeName  string          `json:"leave_type_name,omitempty"`
	Year           int             `json:"year"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	UsedHours      decimal.Decimal `json:"used_hours"`
	RemainingHours decimal.Decimal `json:"remaining_hours"`
	AccrualRate    decimal.Decimal `json:"accrual_rate"`
}

func NewBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		LeaveTypeID:    b.LeaveTypeID,
		LeaveTypeName:  b.LeaveTypeName,
		Year:           b.Year,
		TotalHours:     b.TotalHours,
		UsedHours:      b.UsedHours,
		RemainingHours: b.RemainingHours(),
		AccrualRate:    b.AccrualRate,
	}
}

type LeaveDaysQuery struct {
	StartDate       string
	EndDate         string
	IncludeWeekends bool
}

func (q LeaveDaysQuery) Validate() (LeaveDaysResponse, error) {
	var errs validator.ValidationErrors
	start := errs.Date("start", q.StartDate)
	end := errs.Date("end", q.EndDate)
	if err := errs.Err(); err != nil {
		return LeaveDaysResponse{}, err
	}
	return LeaveDaysResponse{
		StartDate:       utils.FormatDate(start),
		EndDate:         utils.FormatDate(end),
		IncludeWeekends: q.IncludeWeekends,
		Days:            CalculateLeaveDays(start, end, q.IncludeWeekends),
	}, nil
}

type LeaveDaysResponse struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	IncludeWeekends bool   `json:"include_weekends"`
	Days            int    `json:"days"`
}
