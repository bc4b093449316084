package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PAY PERIOD DTOs ==========

type CreatePayPeriodRequest struct {
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

// Validate checks formats and ordering and returns the parsed period.
func (r *CreatePayPeriodRequest) Validate() (PayPeriod, error) {
	return parsePeriodDates(r.StartDate, r.EndDate, r.PaymentDate)
}

type UpdatePayPeriodRequest struct {
	ID          string  `json:"-"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *UpdatePayPeriodRequest) Validate() (PayPeriod, error) {
	p, err := parsePeriodDates(r.StartDate, r.EndDate, r.PaymentDate)
	if err != nil {
		return PayPeriod{}, err
	}
	p.ID = r.ID
	return p, nil
}

func parsePeriodDates(start, end string, payment *string) (PayPeriod, error) {
	var errs validator.ValidationErrors
	var p PayPeriod

	p.StartDate = errs.Date("start_date", start)
	p.EndDate = errs.Date("end_date", end)
	if payment != nil {
		p.PaymentDate = errs.Date("payment_date", *payment)
	}
	if err := errs.Err(); err != nil {
		return PayPeriod{}, err
	}

	if !p.StartDate.Before(p.EndDate) {
		return PayPeriod{}, ErrInvalidPeriodDates
	}
	// A zero payment date is filled in from the pay schedule.
	if payment != nil && p.PaymentDate.Before(p.StartDate) {
		return PayPeriod{}, ErrInvalidPaymentDate
	}
	p.Status = PeriodDraft
	return p, nil
}

type CreateAnnualPeriodsRequest struct {
	Year int `json:"year"`
}

func (r *CreateAnnualPeriodsRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Year("year", r.Year)
	return errs.Err()
}

type PayPeriodResponse struct {
	ID          string          `json:"id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	PaymentDate string          `json:"payment_date"`
	Status      string          `json:"status"`
	IsCurrent   bool            `json:"is_current"`
	TotalGross  decimal.Decimal `json:"total_gross"`
}

func NewPayPeriodResponse(p PayPeriod, today time.Time, totalGross decimal.Decimal) PayPeriodResponse {
	return PayPeriodResponse{
		ID:          p.ID,
		StartDate:   utils.FormatDate(p.StartDate),
		EndDate:     utils.FormatDate(p.EndDate),
		PaymentDate: utils.FormatDate(p.PaymentDate),
		Status:      string(p.Status),
		IsCurrent:   p.IsCurrent(today),
		TotalGross:  totalGross,
	}
}

// ========== PROCESSING DTOs ==========

// ProcessResult summarizes one processing run. Warnings carry soft failures
// such as employees without a current compensation record.
type ProcessResult struct {
	PeriodID string    `json:"period_id"`
	Created  int       `json:"created"`
	Skipped  int       `json:"skipped"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type Warning struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Message    string `json:"message"`
}

type CompleteResult struct {
	PeriodID string `json:"period_id"`
	Approved int64  `json:"approved"`
}

// ========== PAYSLIP DTOs ==========

type PayrollEntryResponse struct {
	ComponentName      string          `json:"component_name"`
	Type               string          `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	IsRecurring        bool            `json:"is_recurring"`
	IsManualAdjustment bool            `json:"is_manual_adjustment"`
}

type PayrollResponse struct {
	ID              string                 `json:"id"`
	EmployeeID      string                 `json:"employee_id"`
	PayPeriodID     string                 `json:"pay_period_id"`
	GrossPay        decimal.Decimal        `json:"gross_pay"`
	TaxAmount       decimal.Decimal        `json:"tax_amount"`
	TotalDeductions decimal.Decimal        `json:"total_deductions"`
	NetPay          decimal.Decimal        `json:"net_pay"`
	Status          string                 `json:"status"`
	Entries         []PayrollEntryResponse `json:"entries"`
}

func NewPayrollResponse(p Payroll) PayrollResponse {
	entries := make([]PayrollEntryResponse, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, PayrollEntryResponse{
			ComponentName:      e.ComponentName,
			Type:               string(e.Type),
			Amount:             e.Amount,
			IsRecurring:        e.IsRecurring,
			IsManualAdjustment: e.IsManualAdjustment,
		})
	}
	return PayrollResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		PayPeriodID:     p.PayPeriodID,
		GrossPay:        p.GrossPay,
		TaxAmount:       p.TaxAmount,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
		Status:          string(p.Status),
		Entries:         entries,
	}
}
